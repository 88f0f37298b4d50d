package handlers

import (
	"bytes"
	"dhl-location-service/internal/domain"
	"dhl-location-service/internal/logger"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed templates/search.html
var templateFS embed.FS

var searchTemplate = template.Must(template.ParseFS(templateFS, "templates/search.html"))

type locationView struct {
	Name     string
	Street   string
	Locality string
	Distance string
	Details  string
}

type searchPageData struct {
	Countries  []countryOption
	Country    string
	PostalCode string
	City       string
	Message    string
	Results    []locationView

	MaxCity       int
	MaxPostalCode int
}

// SearchPage renders the search form and, when the query carries search
// fields, the results below it.
type SearchPage struct {
	Locations *LocationHandler
}

func (p *SearchPage) Show(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r)
	data := searchPageData{
		Countries:  countries,
		Country:    criteria.Country,
		PostalCode: criteria.PostalCode,
		City:       criteria.City,

		MaxCity:       domain.MaxCityLength,
		MaxPostalCode: domain.MaxPostalCodeLength,
	}

	if criteria != (domain.SearchCriteria{}) {
		if err := criteria.Validate(); errors.Is(err, domain.ErrCriteriaTooLong) {
			data.Message = fmt.Sprintf("City cannot be longer than %d characters and postal code cannot be longer than %d characters.",
				domain.MaxCityLength, domain.MaxPostalCodeLength)
		} else if err != nil {
			data.Message = "Please fill in country, city and postal code."
		} else {
			locations, err := p.Locations.search(r.Context(), criteria)
			if err != nil {
				data.Message = publicMessage(err) + "."
			} else {
				data.Results = formatLocations(r, locations)
			}
		}
	}

	var buf bytes.Buffer
	if err := searchTemplate.Execute(&buf, data); err != nil {
		logger.FromContext(r.Context()).Error("render search page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func formatLocations(r *http.Request, locations []domain.Location) []locationView {
	out := make([]locationView, 0, len(locations))
	for _, loc := range locations {
		addr := loc.Place.Address
		v := locationView{
			Name:     loc.Name,
			Street:   addr.StreetAddress,
			Locality: strings.TrimSpace(addr.PostalCode + " " + addr.AddressLocality),
		}
		if loc.Distance > 0 {
			v.Distance = fmt.Sprintf("%.0f m", loc.Distance)
		}

		details, err := locationYAML(loc)
		if err != nil {
			logger.FromContext(r.Context()).Warn("encode location details", zap.String("name", loc.Name), zap.Error(err))
		}
		v.Details = details

		out = append(out, v)
	}

	return out
}

// locationYAML renders the full record, including unmodelled fields.
func locationYAML(loc domain.Location) (string, error) {
	raw, err := loc.Raw()
	if err != nil {
		return "", err
	}

	b, err := yaml.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("marshal location yaml: %w", err)
	}
	return string(b), nil
}
