package deeplink

import (
	"net/url"
	"strings"

	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
)

// ParseQuery reads the recognised parameters from a raw query string. A
// leading "?" is allowed and malformed pairs are skipped.
func ParseQuery(rawQuery string) Params {
	values, _ := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(rawQuery), "?"))
	return Params{
		Market:      values.Get("market"),
		Operation:   values.Get("operation"),
		Mode:        values.Get("mode"),
		From:        values.Get("from"),
		Pool:        values.Get("pool"),
		Scroll:      values.Get("scroll"),
		PickBestGlv: values.Get("pickBestGlv"),
	}
}

// ParseURL parses a full deep link and returns its parameters along with the
// raw query string. Hash-routed links ("/#/pools?market=...") are supported.
func ParseURL(link string) (Params, string, error) {
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return Params{}, "", clierr.Wrap(clierr.CodeUsage, "parse deep link", err)
	}
	rawQuery := parsed.RawQuery
	if rawQuery == "" {
		if _, query, ok := strings.Cut(parsed.Fragment, "?"); ok {
			rawQuery = query
		}
	}
	return ParseQuery(rawQuery), rawQuery, nil
}
