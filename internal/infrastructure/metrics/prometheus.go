package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/integraprice-api/internal/application/ports"
)

const namespace = "integraprice"

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus implementa ports.Metrics con contadores propios en un registry dedicado.
type Prometheus struct {
	registry *prometheus.Registry

	calculations *prometheus.CounterVec
	products     *prometheus.CounterVec
	reports      *prometheus.CounterVec
	exports      *prometheus.CounterVec
	auth         *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
}

// NewPrometheus registra los contadores de negocio y los collectors de proceso y runtime.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	p := &Prometheus{
		registry: reg,
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "pricing_calculations_total",
			Help: "Cálculos de precio ejecutados, por factibilidad.",
		}, []string{"valid"}),
		products: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "products_total",
			Help: "Productos guardados o eliminados.",
		}, []string{"op"}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "dre_reports_total",
			Help: "DRE calculados, por origen de la selección.",
		}, []string{"source"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "dre_exports_total",
			Help: "DRE exportados, por formato.",
		}, []string{"format"}),
		auth: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "auth_events_total",
			Help: "Eventos de autenticación.",
		}, []string{"event"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "Solicitudes HTTP atendidas, por método y código.",
		}, []string{"method", "status"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.calculations, p.products, p.reports, p.exports, p.auth, p.httpRequests,
	)
	return p
}

func (p *Prometheus) PricingCalculated(valid bool) {
	p.calculations.WithLabelValues(strconv.FormatBool(valid)).Inc()
}

func (p *Prometheus) ProductSaved()   { p.products.WithLabelValues("save").Inc() }
func (p *Prometheus) ProductDeleted() { p.products.WithLabelValues("delete").Inc() }

func (p *Prometheus) ReportGenerated(source string) { p.reports.WithLabelValues(source).Inc() }
func (p *Prometheus) ReportExported(format string)  { p.exports.WithLabelValues(format).Inc() }
func (p *Prometheus) AuthEvent(event string)        { p.auth.WithLabelValues(event).Inc() }

// HTTPRequest cuenta una solicitud atendida (lo llama el middleware de logging).
func (p *Prometheus) HTTPRequest(method string, status int) {
	p.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler expone el registry en formato Prometheus.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry devuelve el registry (útil en tests).
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
