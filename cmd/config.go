package cmd

type Config struct {
	HTTPPort              string
	OriginPostalCode      string
	OriginCountry         string
	PartnerCountry        string
	ExchangeRateURL       string
	CanadaPostEnvironment string
	CanadaPostCustomer    string
	CanadaPostContract    string
	CanadaPostUsername    string
	CanadaPostPassword    string
}
