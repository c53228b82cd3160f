package ports

// Metrics puerto de salida para contadores de negocio.
// El adaptador Prometheus vive en infrastructure/metrics; NopMetrics sirve para tests.
type Metrics interface {
	PricingCalculated(valid bool)
	ProductSaved()
	ProductDeleted()
	ReportGenerated(source string) // session | explicit
	ReportExported(format string)  // pdf | xlsx
	AuthEvent(event string)        // login | register | logout
}

// NopMetrics descarta todas las observaciones.
type NopMetrics struct{}

func (NopMetrics) PricingCalculated(bool) {}
func (NopMetrics) ProductSaved()          {}
func (NopMetrics) ProductDeleted()        {}
func (NopMetrics) ReportGenerated(string) {}
func (NopMetrics) ReportExported(string)  {}
func (NopMetrics) AuthEvent(string)       {}
