package domain

// RegistrarQuote is the price of a domain at a single registrar, in USD.
type RegistrarQuote struct {
	Registrar      string  `json:"registrar" yaml:"registrar"`
	FirstYearPrice float64 `json:"first_year" yaml:"first_year"`
	RenewalPrice   float64 `json:"renewal" yaml:"renewal"`
	WhoisPrivacy   string  `json:"whois_privacy" yaml:"whois_privacy"`
	URL            string  `json:"url" yaml:"url"`
}

// Total is the two-year cost used to rank quotes.
func (q RegistrarQuote) Total() float64 {
	return q.FirstYearPrice + q.RenewalPrice
}
