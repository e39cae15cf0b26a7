package ui

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"goeda/domain/eda"
	apperrors "goeda/internal/errors"
	"goeda/internal/report"
)

// handleIndex renders the single-page dashboard
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title": "Automated EDA Web App",
		"Theme": s.config.UI.Theme,
	}
	w.Header().Set("Content-Type", "text/html")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// handleUpload accepts a multipart CSV/XLSX upload and replaces the
// current dataset.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.Upload.MaxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, apperrors.InvalidInput("missing file field in upload"))
		return
	}
	defer file.Close()

	t, err := s.loader.Load(file, header.Filename)
	if err != nil {
		s.logger.Warn("Upload of %s failed: %v", header.Filename, err)
		s.writeError(w, err)
		return
	}

	ds := s.state.replace(header.Filename, t)
	s.logger.Info("Loaded dataset %s (%s): %d rows, %d columns",
		ds.ID, ds.Name, t.RowCount(), t.ColumnCount())

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id":  ds.ID,
		"name":        ds.Name,
		"row_count":   t.RowCount(),
		"columns":     t.ColumnNames(),
		"numeric":     ds.Classification.Numeric,
		"non_numeric": ds.Classification.NonNumeric,
		"uploaded_at": ds.UploadedAt,
	})
}

// handleCurrentDataset returns metadata for the loaded dataset
func (s *Server) handleCurrentDataset(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.state.get()
	if !ok {
		s.writeError(w, apperrors.NoDataset())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id":  ds.ID,
		"name":        ds.Name,
		"row_count":   ds.Table.RowCount(),
		"columns":     ds.Table.ColumnNames(),
		"numeric":     ds.Classification.Numeric,
		"non_numeric": ds.Classification.NonNumeric,
		"uploaded_at": ds.UploadedAt,
	})
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.state.get()
	if !ok {
		s.writeError(w, apperrors.NoDataset())
		return
	}
	s.writeJSON(w, http.StatusOK, s.analyzer.Overview(ds.Table))
}

func (s *Server) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.state.get()
	if !ok {
		s.writeError(w, apperrors.NoDataset())
		return
	}
	matrix, err := s.analyzer.Correlation(ds.Table)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, matrix)
}

// handleOutliers serves the boxplot tab: ?column= selects the numeric
// column; without it the first numeric column is used.
func (s *Server) handleOutliers(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.state.get()
	if !ok {
		s.writeError(w, apperrors.NoDataset())
		return
	}

	column := r.URL.Query().Get("column")
	if column == "" {
		if len(ds.Classification.Numeric) == 0 {
			s.writeError(w, eda.ErrNoNumericColumns)
			return
		}
		column = ds.Classification.Numeric[0]
	}

	rep, err := s.analyzer.Outliers(ds.Table, column)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleMissing(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.state.get()
	if !ok {
		s.writeError(w, apperrors.NoDataset())
		return
	}
	s.writeJSON(w, http.StatusOK, s.analyzer.MissingValues(ds.Table))
}

func (s *Server) handleDuplicates(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.state.get()
	if !ok {
		s.writeError(w, apperrors.NoDataset())
		return
	}
	s.writeJSON(w, http.StatusOK, s.analyzer.Duplicates(ds.Table))
}

// handleFullAnalysis evaluates all five analyses concurrently. The table
// is immutable and every analysis is read-only, so the goroutines need no
// coordination beyond the errgroup itself.
func (s *Server) handleFullAnalysis(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.state.get()
	if !ok {
		s.writeError(w, apperrors.NoDataset())
		return
	}
	t := ds.Table

	var (
		overview    eda.Overview
		correlation *eda.CorrelationMatrix
		corrWarning string
		outliers    []*eda.OutlierReport
		missing     eda.MissingValueReport
		duplicates  eda.DuplicateReport
	)

	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		overview = s.analyzer.Overview(t)
		return nil
	})
	g.Go(func() error {
		matrix, err := s.analyzer.Correlation(t)
		if err != nil {
			if eda.IsNoNumericColumns(err) {
				corrWarning = "No numerical columns available for correlation."
				return nil
			}
			return err
		}
		correlation = matrix
		return nil
	})
	g.Go(func() error {
		for _, name := range ds.Classification.Numeric {
			rep, err := s.analyzer.Outliers(t, name)
			if err != nil {
				return err
			}
			outliers = append(outliers, rep)
		}
		return nil
	})
	g.Go(func() error {
		missing = s.analyzer.MissingValues(t)
		return nil
	})
	g.Go(func() error {
		duplicates = s.analyzer.Duplicates(t)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.writeError(w, err)
		return
	}

	resp := map[string]interface{}{
		"overview":   overview,
		"outliers":   outliers,
		"missing":    missing,
		"duplicates": duplicates,
	}
	if correlation != nil {
		resp["correlation"] = correlation
	} else {
		resp["correlation_warning"] = corrWarning
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleReport renders the markdown EDA summary as HTML
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.state.get()
	if !ok {
		s.writeError(w, apperrors.NoDataset())
		return
	}
	md := s.reports.BuildMarkdown(ds.Table, ds.Name)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(report.RenderHTML(md))
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response: %v", err)
	}
}

// writeError maps domain and application errors to HTTP responses
func (s *Server) writeError(w http.ResponseWriter, err error) {
	app := toAppError(err)

	status := http.StatusInternalServerError
	switch app.Code {
	case apperrors.CodeNoDataset:
		status = http.StatusNotFound
	case apperrors.CodeInvalidColumn, apperrors.CodeInvalidInput, apperrors.CodeMalformedInput:
		status = http.StatusBadRequest
	case apperrors.CodeNoNumericColumns:
		status = http.StatusUnprocessableEntity
	}

	s.writeJSON(w, status, map[string]string{
		"code":  app.Code,
		"error": app.Message,
	})
}

// toAppError converts analyzer sentinels into coded application errors
func toAppError(err error) *apperrors.AppError {
	var app *apperrors.AppError
	if stderrors.As(err, &app) {
		return app
	}
	switch {
	case eda.IsNoNumericColumns(err):
		return apperrors.NoNumericColumns()
	case eda.IsInvalidColumn(err):
		return apperrors.WithCode(apperrors.CodeInvalidColumn, err).(*apperrors.AppError)
	case eda.IsMalformedInput(err):
		return apperrors.MalformedInput(err.Error(), err)
	default:
		return apperrors.InternalError(err.Error())
	}
}
