package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettingsNormalize(t *testing.T) {
	got, err := Settings{APIEndpoint: " https://api.dhl.com/// ", APIKeyID: " dhl_api "}.Normalize()
	require.NoError(t, err)
	require.Equal(t, "https://api.dhl.com", got.APIEndpoint)
	require.Equal(t, "dhl_api", got.APIKeyID)
}

func TestSettingsNormalizeRejects(t *testing.T) {
	cases := map[string]Settings{
		"empty endpoint":    {APIEndpoint: "", APIKeyID: "k"},
		"relative endpoint": {APIEndpoint: "api.dhl.com", APIKeyID: "k"},
		"ftp endpoint":      {APIEndpoint: "ftp://api.dhl.com", APIKeyID: "k"},
		"empty key id":      {APIEndpoint: "https://api.dhl.com", APIKeyID: "  "},
	}

	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Normalize()
			require.Error(t, err)
		})
	}
}

func TestSearchCriteriaValidate(t *testing.T) {
	require.NoError(t, SearchCriteria{Country: "CZ", PostalCode: "11000", City: "Prague"}.Validate())

	err := SearchCriteria{Country: "CZ", City: " "}.Validate()
	require.EqualError(t, err, "search criteria: missing postal_code, city")
}

func TestSearchCriteriaValidateLengths(t *testing.T) {
	ok := SearchCriteria{
		Country:    "DE",
		PostalCode: strings.Repeat("1", MaxPostalCodeLength),
		City:       strings.Repeat("ü", MaxCityLength),
	}
	require.NoError(t, ok.Validate())

	err := SearchCriteria{Country: "DE", PostalCode: "53113", City: strings.Repeat("a", MaxCityLength+1)}.Validate()
	require.ErrorIs(t, err, ErrCriteriaTooLong)
	require.EqualError(t, err, "search criteria too long: city has 65 characters, limit 64")

	err = SearchCriteria{Country: "DE", PostalCode: strings.Repeat("1", MaxPostalCodeLength+1), City: "Bonn"}.Validate()
	require.ErrorIs(t, err, ErrCriteriaTooLong)
	require.Contains(t, err.Error(), "postal_code has 21 characters")
}
