// Package steam is a typed client for the unofficial Steam storefront
// JSON API: app and package details, featured listings and featured
// categories.
package steam

import (
  "context"
  "encoding/json"
  "fmt"
  "sort"
  "strconv"

  "github.com/go-playground/validator/v10"
  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
)

const baseURL = "https://store.steampowered.com/api"

type Client struct {
  config Config
  deps   Dependencies
}

type Config struct {
  // BaseURL overrides the public storefront endpoint. Used in tests.
  BaseURL string
}

type Dependencies struct {
  Client *resty.Client `validate:"required"`
}

func (d *Dependencies) Validate() error {
  return validator.New().Struct(d)
}

func NewClient(config Config, deps Dependencies) (*Client, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }

  if config.BaseURL == "" {
    config.BaseURL = baseURL
  }

  return &Client{
    config: config,
    deps:   deps,
  }, nil
}

type AppDetailsParams struct {
  AppId   int64  `json:"app_id" validate:"required,gt=0"`
  Country string `json:"country"`
}

func (p *AppDetailsParams) Validate() error {
  return validator.New().Struct(p)
}

type PackageDetailsParams struct {
  PackageId int64  `json:"package_id" validate:"required,gt=0"`
  Country   string `json:"country"`
}

func (p *PackageDetailsParams) Validate() error {
  return validator.New().Struct(p)
}

type FeaturedParams struct {
  Country string `json:"country"`
}

// AppDetails fetches the appdetails endpoint for a single app id.
// Returns AppNotFoundError when the storefront has no entry for the id.
func (c *Client) AppDetails(ctx context.Context, params AppDetailsParams) (*App, error) {
  if err := params.Validate(); err != nil {
    return nil, fmt.Errorf("invalid params: %w", err)
  }

  log.
    WithFields(log.Fields{
      "params.app_id":  params.AppId,
      "params.country": params.Country,
    }).
    Debug("steam app details request started")

  query := map[string]string{
    "appids": strconv.FormatInt(params.AppId, 10),
  }

  payload, err := c.getJSON(ctx, "appdetails", query, params.Country)
  if err != nil {
    return nil, fmt.Errorf("c.getJSON: %w", err)
  }

  data, ok := resolveEntry(payload, params.AppId)
  if !ok {
    return nil, AppNotFoundError{AppId: params.AppId}
  }

  app := makeApp(data)

  log.
    WithFields(log.Fields{
      "params.app_id": params.AppId,
      "app.name":      app.Name,
    }).
    Debug("steam app details decoded successfully")

  return &app, nil
}

// PackageDetails fetches the packagedetails endpoint for a single package id.
// Returns PackageNotFoundError when the storefront has no entry for the id.
func (c *Client) PackageDetails(ctx context.Context, params PackageDetailsParams) (*Package, error) {
  if err := params.Validate(); err != nil {
    return nil, fmt.Errorf("invalid params: %w", err)
  }

  log.
    WithFields(log.Fields{
      "params.package_id": params.PackageId,
      "params.country":    params.Country,
    }).
    Debug("steam package details request started")

  query := map[string]string{
    "packageids": strconv.FormatInt(params.PackageId, 10),
  }

  payload, err := c.getJSON(ctx, "packagedetails", query, params.Country)
  if err != nil {
    return nil, fmt.Errorf("c.getJSON: %w", err)
  }

  data, ok := resolveEntry(payload, params.PackageId)
  if !ok {
    return nil, PackageNotFoundError{PackageId: params.PackageId}
  }

  pack := makePackage(data)

  return &pack, nil
}

// Featured fetches the storefront front page listings. The whole response
// body is decoded directly, so no not found case exists here.
func (c *Client) Featured(ctx context.Context, params FeaturedParams) (*FeaturedApps, error) {
  payload, err := c.getJSON(ctx, "featured", map[string]string{}, params.Country)
  if err != nil {
    return nil, fmt.Errorf("c.getJSON: %w", err)
  }

  featured := makeFeaturedApps(payload)

  return &featured, nil
}

// FeaturedCategories fetches curated front page groups. Every object valued
// top level key decodes as one category; scalar fields such as status are
// skipped. Output is sorted by key since the response mapping is unordered.
func (c *Client) FeaturedCategories(ctx context.Context, params FeaturedParams) ([]FeaturedCategory, error) {
  payload, err := c.getJSON(ctx, "featuredcategories", map[string]string{}, params.Country)
  if err != nil {
    return nil, fmt.Errorf("c.getJSON: %w", err)
  }

  keys := make([]string, 0, len(payload))

  for key := range payload {
    keys = append(keys, key)
  }
  sort.Strings(keys)

  categories := make([]FeaturedCategory, 0, len(keys))

  for _, key := range keys {
    data, ok := payload[key].(map[string]any)
    if !ok {
      continue
    }
    categories = append(categories, makeFeaturedCategory(data))
  }

  return categories, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query map[string]string, country string) (map[string]any, error) {
  if country != "" {
    query["cc"] = country
  }

  resp, err := c.deps.Client.R().
    SetContext(ctx).
    SetQueryParams(query).
    Get(fmt.Sprintf("%s/%s", c.config.BaseURL, endpoint))

  if err != nil {
    return nil, fmt.Errorf("resty.Client.Get: %w", err)
  }

  if resp.IsError() {
    return nil, fmt.Errorf("storefront response status: %s", resp.Status())
  }

  payload := make(map[string]any)

  if err = json.Unmarshal(resp.Body(), &payload); err != nil {
    return nil, fmt.Errorf("response json unmarshal: %w", err)
  }

  return payload, nil
}
