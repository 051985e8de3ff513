package refdata

// Config describes where the obliquity table comes from. An empty
// ObliquityURL selects the table compiled into the binary; an http(s) URL
// is fetched once at startup; anything else is treated as a local file path.
type Config struct {
	ObliquityURL string
	Verbose      bool
}
