package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vfg2006/market-analyzer-api/infrastructure/report"
	"github.com/vfg2006/market-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/market-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/market-analyzer-api/pkg/log"
)

const (
	uploadField     = "file"
	workbookExt     = ".xlsx"
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"

	multipartOverhead = 1 << 20
)

// ImportWorkbook recebe a planilha (multipart, campo "file") e substitui o conteúdo da sessão
func ImportWorkbook(service analyzing.Analyzer, maxUploadBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := paramsOf(r).session()
		logger := log.ForSession(r.Context(), id)

		// o limite vale para o arquivo; o corpo ganha folga para os cabeçalhos do multipart
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+multipartOverhead)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeTooLarge(w, maxUploadBytes)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envie a planilha como multipart/form-data: "+err.Error(), nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile(uploadField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' com a planilha é obrigatório", nil)
			return
		}
		defer file.Close()

		if header.Size > maxUploadBytes {
			writeTooLarge(w, maxUploadBytes)
			return
		}

		if !strings.EqualFold(filepath.Ext(header.Filename), workbookExt) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "A planilha deve estar no formato .xlsx", map[string]any{"filename": header.Filename})
			return
		}

		logger.WithFields(log.Fields{
			"filename": header.Filename,
			"size":     header.Size,
		}).Info("Importando planilha")

		summary, err := service.ImportWorkbook(id, file)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao importar planilha")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func writeTooLarge(w http.ResponseWriter, maxUploadBytes int64) {
	apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, fmt.Sprintf("Arquivo acima do limite de %d bytes", maxUploadBytes), nil)
}

// ExportRanking baixa o ranking em CSV (padrão) ou XLSX
func ExportRanking(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := paramsOf(r).session()
		logger := log.ForSession(r.Context(), id)

		format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
		if format == "" {
			format = report.FormatCSV
		}

		data, err := service.ExportRanking(id, queryCategory(r), format)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao exportar ranking")
			return
		}

		contentType := contentTypeCSV
		if format == report.FormatXLSX {
			contentType = contentTypeXLSX
		}

		writeAttachment(w, logger, contentType, "ranking."+format, data)
	})
}

// GetReport gera o relatório executivo em PDF de uma subcategoria
func GetReport(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := paramsOf(r).session()
		logger := log.ForSession(r.Context(), id)

		category := queryCategory(r)
		subcategory := strings.TrimSpace(r.URL.Query().Get("subcategory"))
		if category == "" || subcategory == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros 'category' e 'subcategory' são obrigatórios", nil)
			return
		}

		data, err := service.GenerateReport(id, category, subcategory)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao gerar relatório")
			return
		}

		logger.WithFields(log.Fields{
			"category":    category,
			"subcategory": subcategory,
			"bytes":       len(data),
		}).Info("Relatório gerado")

		writeAttachment(w, logger, contentTypePDF, "relatorio-"+slug(subcategory)+".pdf", data)
	})
}

func writeAttachment(w http.ResponseWriter, logger log.Logger, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		logger.WithError(err).Warn("Erro ao enviar arquivo")
	}
}

// stripAccents remove acentos: "Elétricas" vira "Eletricas".
// transform.Chain guarda estado, então cada chamada monta o seu.
func stripAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// slug gera um nome de arquivo seguro a partir do nome da subcategoria
func slug(name string) string {
	plain, _, err := transform.String(stripAccents(), strings.ToLower(name))
	if err != nil {
		plain = strings.ToLower(name)
	}

	var b strings.Builder
	lastDash := false

	for _, r := range plain {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}

	result := strings.TrimSuffix(b.String(), "-")
	if result == "" {
		return "subcategoria"
	}
	return result
}
