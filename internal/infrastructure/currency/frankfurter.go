package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
)

var _ usecase.ExchangeRateProvider = (*FrankfurterProvider)(nil)

// FrankfurterProvider adaptador de tasas de cambio contra la API pública de
// Frankfurter. Usa net/http de la librería estándar; no hay SDK oficial.
type FrankfurterProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewFrankfurterProvider construye el adaptador. baseURL sin slash final,
// ej. https://api.frankfurter.dev/v1.
func NewFrankfurterProvider(baseURL string) *FrankfurterProvider {
	return &FrankfurterProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Rate devuelve la tasa from->to del día. from == to devuelve 1 sin llamar
// a la API.
func (p *FrankfurterProvider) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	endpoint := fmt.Sprintf("%s/latest?base=%s&symbols=%s", p.baseURL, url.QueryEscape(from), url.QueryEscape(to))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("crear request de tasa: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("consultar tasa de cambio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("api de divisas respondió %d", resp.StatusCode)
	}

	var body struct {
		Base  string                     `json:"base"`
		Rates map[string]decimal.Decimal `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("decodificar respuesta de divisas: %w", err)
	}

	rate, ok := body.Rates[to]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("respuesta de divisas sin tasa %s->%s", from, to)
	}
	return rate, nil
}
