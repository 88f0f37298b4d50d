package handlers

type countryOption struct {
	Code string
	Name string
}

// Countries offered by the search form. Names are not translated.
var countries = []countryOption{
	{Code: "AE", Name: "United Arab Emirates"},
	{Code: "AF", Name: "Afghanistan"},
	{Code: "AL", Name: "Albania"},
	{Code: "AM", Name: "Armenia"},
	{Code: "AO", Name: "Angola"},
	{Code: "AR", Name: "Argentina"},
	{Code: "AT", Name: "Austria"},
	{Code: "AU", Name: "Australia"},
	{Code: "BA", Name: "Bosnia and Herzegovina"},
	{Code: "BB", Name: "Barbados"},
	{Code: "BD", Name: "Bangladesh"},
	{Code: "BE", Name: "Belgium"},
	{Code: "BF", Name: "Burkina Faso"},
	{Code: "BG", Name: "Bulgaria"},
	{Code: "BH", Name: "Bahrain"},
	{Code: "BJ", Name: "Benin"},
	{Code: "BM", Name: "Bermuda"},
	{Code: "BN", Name: "Brunei Darussalam"},
	{Code: "BO", Name: "Bolivia"},
	{Code: "BR", Name: "Brazil"},
	{Code: "BS", Name: "Bahamas"},
	{Code: "BT", Name: "Bhutan"},
	{Code: "BW", Name: "Botswana"},
	{Code: "BY", Name: "Belarus"},
	{Code: "CA", Name: "Canada"},
	{Code: "CG", Name: "Congo"},
	{Code: "CH", Name: "Switzerland"},
	{Code: "CI", Name: "Côte d'Ivoire"},
	{Code: "CK", Name: "Cook Islands"},
	{Code: "CL", Name: "Chile"},
	{Code: "CN", Name: "China"},
	{Code: "CO", Name: "Colombia"},
	{Code: "CR", Name: "Costa Rica"},
	{Code: "CV", Name: "Cabo Verde"},
	{Code: "CY", Name: "Cyprus"},
	{Code: "CZ", Name: "Czechia"},
	{Code: "DE", Name: "Germany"},
	{Code: "DK", Name: "Denmark"},
	{Code: "DO", Name: "Dominican Republic"},
	{Code: "DZ", Name: "Algeria"},
	{Code: "EC", Name: "Ecuador"},
	{Code: "EE", Name: "Estonia"},
	{Code: "EG", Name: "Egypt"},
	{Code: "ES", Name: "Spain"},
	{Code: "ET", Name: "Ethiopia"},
	{Code: "FI", Name: "Finland"},
	{Code: "FJ", Name: "Fiji"},
	{Code: "FR", Name: "France"},
	{Code: "GB", Name: "United Kingdom of Great Britain and Northern Ireland"},
	{Code: "GE", Name: "Georgia"},
	{Code: "GF", Name: "French Guiana"},
	{Code: "GG", Name: "Guernsey"},
	{Code: "GH", Name: "Ghana"},
	{Code: "GM", Name: "Gambia"},
	{Code: "GP", Name: "Guadeloupe"},
	{Code: "GR", Name: "Greece"},
	{Code: "GT", Name: "Guatemala"},
	{Code: "GW", Name: "Guinea-Bissau"},
	{Code: "HK", Name: "Hong Kong"},
	{Code: "HN", Name: "Honduras"},
	{Code: "HR", Name: "Croatia"},
	{Code: "HT", Name: "Haiti"},
	{Code: "HU", Name: "Hungary"},
	{Code: "ID", Name: "Indonesia"},
	{Code: "IE", Name: "Ireland"},
	{Code: "IL", Name: "Israel"},
	{Code: "IN", Name: "India"},
	{Code: "IQ", Name: "Iraq"},
	{Code: "IR", Name: "Iran"},
	{Code: "IS", Name: "Iceland"},
	{Code: "IT", Name: "Italy"},
	{Code: "JE", Name: "Jersey"},
	{Code: "JM", Name: "Jamaica"},
	{Code: "JO", Name: "Jordan"},
	{Code: "JP", Name: "Japan"},
	{Code: "KE", Name: "Kenya"},
	{Code: "KG", Name: "Kyrgyzstan"},
	{Code: "KH", Name: "Cambodia"},
	{Code: "KI", Name: "Kiribati"},
	{Code: "KM", Name: "Comoros"},
	{Code: "KP", Name: "North Korea"},
	{Code: "KR", Name: "South Korea"},
	{Code: "KV", Name: "Kosovo"},
	{Code: "KW", Name: "Kuwait"},
	{Code: "KY", Name: "Cayman Islands"},
	{Code: "KZ", Name: "Kazakhstan"},
	{Code: "LA", Name: "Laos"},
	{Code: "LB", Name: "Lebanon"},
	{Code: "LK", Name: "Sri Lanka"},
	{Code: "LR", Name: "Liberia"},
	{Code: "LS", Name: "Lesotho"},
	{Code: "LT", Name: "Lithuania"},
	{Code: "LU", Name: "Luxembourg"},
	{Code: "LV", Name: "Latvia"},
	{Code: "MA", Name: "Morocco"},
	{Code: "MD", Name: "Moldova"},
	{Code: "MG", Name: "Madagascar"},
	{Code: "MK", Name: "North Macedonia"},
	{Code: "ML", Name: "Mali"},
	{Code: "MM", Name: "Myanmar"},
	{Code: "MN", Name: "Mongolia"},
	{Code: "MO", Name: "Macao"},
	{Code: "MP", Name: "Northern Mariana Islands"},
	{Code: "MQ", Name: "Martinique"},
	{Code: "MR", Name: "Mauritania"},
	{Code: "MT", Name: "Malta"},
	{Code: "MU", Name: "Mauritius"},
	{Code: "MV", Name: "Maldives"},
	{Code: "MW", Name: "Malawi"},
	{Code: "MX", Name: "Mexico"},
	{Code: "MY", Name: "Malaysia"},
	{Code: "MZ", Name: "Mozambique"},
	{Code: "NA", Name: "Namibia"},
	{Code: "NG", Name: "Nigeria"},
	{Code: "US", Name: "United States of America"},
}
