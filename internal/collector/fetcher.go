package collector

// Fetcher retrieves raw statistics payloads from the upstream data
// service. Payloads are loosely typed on purpose: field naming and
// shape vary by endpoint generation, and the normalize package owns
// making sense of them.
type Fetcher interface {
	FetchTickStats() (any, error)
	FetchTicks(venue, ticker string) (any, error)
	FetchLiquidationStats() (any, error)
	Name() string
}
