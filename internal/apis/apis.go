// Package apis wraps the public APIs the fun commands use.
package apis

import (
	"context"

	"emperror.dev/errors"

	"github.com/keshon/server-buddy/internal/fetch"
)

// JSONGetter is satisfied by *fetch.Fetcher.
type JSONGetter interface {
	GetJSON(ctx context.Context, url string, out interface{}) error
}

// Endpoints lists the URLs of every API.
type Endpoints struct {
	Quote    string
	DogImage string
	DogFact  string
	CatImage string
}

// Quote is a quote and who said it.
type Quote struct {
	Text   string `json:"q"`
	Author string `json:"a"`
}

// String renders the quote the way the bot posts it.
func (q Quote) String() string {
	return q.Text + " -" + q.Author
}

// Client fetches quotes and animal pictures.
type Client struct {
	get       JSONGetter
	endpoints Endpoints
}

// New creates a Client.
func New(get JSONGetter, endpoints Endpoints) *Client {
	return &Client{get: get, endpoints: endpoints}
}

// RandomQuote returns the first quote of a zenquotes-style array.
func (c *Client) RandomQuote(ctx context.Context) (Quote, error) {
	var quotes []Quote
	if err := c.get.GetJSON(ctx, c.endpoints.Quote, &quotes); err != nil {
		return Quote{}, errors.WithMessage(err, "random quote")
	}
	if len(quotes) == 0 {
		return Quote{}, emptyResponse(c.endpoints.Quote)
	}
	return quotes[0], nil
}

// DogImage returns the URL of a random dog picture.
func (c *Client) DogImage(ctx context.Context) (string, error) {
	var out struct {
		Link string `json:"link"`
	}
	if err := c.get.GetJSON(ctx, c.endpoints.DogImage, &out); err != nil {
		return "", errors.WithMessage(err, "dog image")
	}
	if out.Link == "" {
		return "", emptyResponse(c.endpoints.DogImage)
	}
	return out.Link, nil
}

// DogFact returns a random dog fact.
func (c *Client) DogFact(ctx context.Context) (string, error) {
	var out struct {
		Fact string `json:"fact"`
	}
	if err := c.get.GetJSON(ctx, c.endpoints.DogFact, &out); err != nil {
		return "", errors.WithMessage(err, "dog fact")
	}
	if out.Fact == "" {
		return "", emptyResponse(c.endpoints.DogFact)
	}
	return out.Fact, nil
}

// CatImage returns the URL of the first image of a cat search.
func (c *Client) CatImage(ctx context.Context) (string, error) {
	var out []struct {
		URL string `json:"url"`
	}
	if err := c.get.GetJSON(ctx, c.endpoints.CatImage, &out); err != nil {
		return "", errors.WithMessage(err, "cat image")
	}
	if len(out) == 0 || out[0].URL == "" {
		return "", emptyResponse(c.endpoints.CatImage)
	}
	return out[0].URL, nil
}

func emptyResponse(url string) error {
	return &fetch.DecodeError{URL: url, Err: errors.New("empty response")}
}
