package steam

import "github.com/ushakovn/steamfront/pkg/money"

// PriceInfo holds product pricing in minor currency units.
type PriceInfo struct {
  Currency        string `json:"currency"`
  Initial         int64  `json:"initial"`
  Final           int64  `json:"final"`
  DiscountPercent int64  `json:"discount_percent"`
}

// InitialFormatted returns the initial price as a two decimal major units string.
func (p PriceInfo) InitialFormatted() string {
  return money.String(p.Initial)
}

// FinalFormatted returns the final price as a two decimal major units string.
func (p PriceInfo) FinalFormatted() string {
  return money.String(p.Final)
}

type Screenshot struct {
  Id            int64  `json:"id"`
  PathThumbnail string `json:"path_thumbnail"`
  PathFull      string `json:"path_full"`
}

type Movie struct {
  Id        int64             `json:"id"`
  Name      string            `json:"name"`
  Thumbnail string            `json:"thumbnail"`
  Webm      map[string]string `json:"webm"`
  Mp4       map[string]string `json:"mp4"`
  Highlight bool              `json:"highlight"`
}

type Category struct {
  Id          int64  `json:"id"`
  Description string `json:"description"`
}

type Genre struct {
  Id          string `json:"id"`
  Description string `json:"description"`
}

// App is a single storefront product listing.
type App struct {
  Id                  int64            `json:"steam_appid"`
  Name                string           `json:"name"`
  Type                string           `json:"type"`
  IsFree              bool             `json:"is_free"`
  DetailedDescription string           `json:"detailed_description"`
  AboutTheGame        string           `json:"about_the_game"`
  ShortDescription    string           `json:"short_description"`
  SupportedLanguages  string           `json:"supported_languages"`
  HeaderImage         string           `json:"header_image"`
  Website             *string          `json:"website"`
  Developers          []string         `json:"developers"`
  Publishers          []string         `json:"publishers"`
  PriceOverview       *PriceInfo       `json:"price_overview"`
  Packages            []int64          `json:"packages"`
  PackageGroups       []map[string]any `json:"package_groups"`
  Platforms           map[string]bool  `json:"platforms"`
  Categories          []Category       `json:"categories"`
  Genres              []Genre          `json:"genres"`
  Screenshots         []Screenshot     `json:"screenshots"`
  Movies              []Movie          `json:"movies"`
  ReleaseDate         map[string]any   `json:"release_date"`
  SupportInfo         map[string]string `json:"support_info"`
  Background          string           `json:"background"`
  ContentDescriptors  map[string]any   `json:"content_descriptors"`
}

// Package is a bundle of apps sold together under one price.
type Package struct {
  Name        string           `json:"name"`
  PageImage   string           `json:"page_image"`
  HeaderImage string           `json:"header_image"`
  SmallLogo   string           `json:"small_logo"`
  Apps        []map[string]any `json:"apps"`
  Price       *PriceInfo       `json:"price"`
  Platforms   map[string]bool  `json:"platforms"`
  Controller  map[string]any   `json:"controller"`
  ReleaseDate map[string]any   `json:"release_date"`
}

// FeaturedApp is a single promoted listing from the storefront front page.
type FeaturedApp struct {
  Id                      int64  `json:"id"`
  Type                    int64  `json:"type"`
  Name                    string `json:"name"`
  Discounted              bool   `json:"discounted"`
  DiscountPercent         int64  `json:"discount_percent"`
  OriginalPrice           *int64 `json:"original_price"`
  FinalPrice              int64  `json:"final_price"`
  Currency                string `json:"currency"`
  LargeCapsuleImage       string `json:"large_capsule_image"`
  SmallCapsuleImage       string `json:"small_capsule_image"`
  WindowsAvailable        bool   `json:"windows_available"`
  MacAvailable            bool   `json:"mac_available"`
  LinuxAvailable          bool   `json:"linux_available"`
  StreamingVideoAvailable bool   `json:"streamingvideo_available"`
  HeaderImage             string `json:"header_image"`
  ControllerSupport       string `json:"controller_support"`
}

// FeaturedApps groups front page listings by capsule size and platform.
type FeaturedApps struct {
  LargeCapsules []FeaturedApp `json:"large_capsules"`
  FeaturedWin   []FeaturedApp `json:"featured_win"`
  FeaturedMac   []FeaturedApp `json:"featured_mac"`
  FeaturedLinux []FeaturedApp `json:"featured_linux"`
  Layout        string        `json:"layout"`
  Status        int64         `json:"status"`
}

// FeaturedCategory is a named curated group of promoted listings.
type FeaturedCategory struct {
  Id    string        `json:"id"`
  Name  string        `json:"name"`
  Items []FeaturedApp `json:"items"`
}
