package ports

import (
	"time"

	"github.com/jhoicas/integraprice-api/internal/domain/dre"
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
)

// StatementDocument datos que necesita un exportador para generar el DRE.
type StatementDocument struct {
	Company     entity.CompanyInfo
	Report      dre.Report
	Lines       []dre.Line
	GeneratedAt time.Time
}

// StatementExporter genera el DRE en un formato de archivo (PDF, XLSX).
type StatementExporter interface {
	Export(doc StatementDocument) ([]byte, error)
	ContentType() string
	Extension() string
}
