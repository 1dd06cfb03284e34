package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// FetchRates pulls a currency->rate JSON document from url. Callers fall back
// to the bundled table when the fetch fails; a stale rate beats no quotation.
func FetchRates(ctx context.Context, url string) (Rates, error) {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetHeader("Accept", "application/json")

	var rates Rates
	resp, err := client.R().
		SetContext(ctx).
		SetResult(&rates).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch rates from %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch rates from %s: status %s", url, resp.Status())
	}
	if len(rates) == 0 {
		return nil, &ConfigurationError{Key: url, Reason: "returned an empty rate table"}
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return rates, nil
}
