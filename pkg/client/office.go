package client

import (
	"context"
	"net/url"
)

const officesPath = "/api/v1/offices"

type OfficeClient struct {
	httpClient *HttpClient
}

func NewOfficeClient(baseURL string) *OfficeClient {
	return &OfficeClient{
		httpClient: NewHttpClient(baseURL),
	}
}

// WithToken sends token as a bearer credential on every request.
func (c *OfficeClient) WithToken(token string) *OfficeClient {
	c.httpClient.BearerToken = token
	return c
}

func (c *OfficeClient) GetAll(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, officesPath)
}

func (c *OfficeClient) Get(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.GET(ctx, officesPath+"/"+url.PathEscape(id))
}

func (c *OfficeClient) Create(ctx context.Context, body any) (*Response, error) {
	return c.httpClient.POST(ctx, officesPath, body)
}

func (c *OfficeClient) CreateRaw(ctx context.Context, rawBody []byte) (*Response, error) {
	return c.httpClient.POSTRaw(ctx, officesPath, rawBody)
}

func (c *OfficeClient) Update(ctx context.Context, id string, body any) (*Response, error) {
	return c.httpClient.PUT(ctx, officesPath+"/"+url.PathEscape(id), body)
}

func (c *OfficeClient) ChangeStatus(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.PUT(ctx, officesPath+"/"+url.PathEscape(id)+"/status", nil)
}

func (c *OfficeClient) WaitForHealthy(ctx context.Context) error {
	return c.httpClient.WaitForHealthy(ctx, defaultHTTPTimeout)
}
