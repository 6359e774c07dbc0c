package zainetto

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
)

// Quote is the latest known price for a ticker. When every provider failed it
// is returned with Unavailable set: a clearly flagged degraded result, never
// an error.
type Quote struct {
	Ticker      string
	Price       float64
	Source      string
	Unavailable bool
}

// quoteProvider fetches the latest price for a ticker from one remote service.
type quoteProvider struct {
	name  string
	fetch func(client *http.Client, ticker string) (float64, error)
}

// quoteProviders is the fixed fallback list, tried in order. There is no
// retry within a provider: any failure, including a non-success HTTP status,
// just moves on to the next one.
var quoteProviders = []quoteProvider{
	{"yahoo", fetchYahoo},
	{"ls-tc", fetchLS},
}

// LatestQuote returns the latest price for a ticker, trying each provider
// sequentially. All failures are logged and swallowed; the caller always gets
// a well-formed Quote.
func LatestQuote(ticker string) Quote {
	client := cachedClient()
	for _, p := range quoteProviders {
		price, err := p.fetch(client, ticker)
		if err != nil {
			log.Printf("quote %s from %s failed: %v", ticker, p.name, err)
			continue
		}
		return Quote{Ticker: ticker, Price: price, Source: p.name}
	}
	return Quote{Ticker: ticker, Unavailable: true}
}

// fetchYahoo reads the regular market price from the Yahoo chart endpoint.
func fetchYahoo(client *http.Client, ticker string) (float64, error) {
	addr := "https://query1.finance.yahoo.com/v8/finance/chart/" + url.PathEscape(ticker)
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return 0, err
	}
	return jsonFloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
}

// fetchLS reads the last traded price from ls-tc.de.
func fetchLS(client *http.Client, ticker string) (float64, error) {
	addr := "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrument=" + url.QueryEscape(ticker) + "&series=intraday&type=mini"
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return 0, err
	}
	return jsonFloat(jobj, "$.series.intraday.data[-1:][1]")
}

// jsonFloat extracts a float from a decoded JSON document with a jsonpath.
func jsonFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%q is not a number: %v", path, jval)
	}
	return val, nil
}

// diskCache implements a simple disk cache for HTTP responses. The cache key
// includes the day, so entries expire daily.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to the disk cache.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// cachedClient returns a client whose responses are cached with daily expiry.
func cachedClient() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
