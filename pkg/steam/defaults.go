package steam

import (
  "context"
  "sync"

  "github.com/go-resty/resty/v2"
)

// Convenience entry points over a shared default client, for callers that
// do not need to manage the transport themselves.

var defaultClient = sync.OnceValues(func() (*Client, error) {
  return NewClient(Config{}, Dependencies{
    Client: resty.New(),
  })
})

func GetAppDetails(ctx context.Context, params AppDetailsParams) (*App, error) {
  client, err := defaultClient()
  if err != nil {
    return nil, err
  }
  return client.AppDetails(ctx, params)
}

func GetPackageDetails(ctx context.Context, params PackageDetailsParams) (*Package, error) {
  client, err := defaultClient()
  if err != nil {
    return nil, err
  }
  return client.PackageDetails(ctx, params)
}

func GetFeatured(ctx context.Context, params FeaturedParams) (*FeaturedApps, error) {
  client, err := defaultClient()
  if err != nil {
    return nil, err
  }
  return client.Featured(ctx, params)
}

func GetFeaturedCategories(ctx context.Context, params FeaturedParams) ([]FeaturedCategory, error) {
  client, err := defaultClient()
  if err != nil {
    return nil, err
  }
  return client.FeaturedCategories(ctx, params)
}
