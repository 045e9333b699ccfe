package steam

import (
  "github.com/samber/lo"
  "github.com/spf13/cast"
)

// Decoding is deliberately lenient: the storefront API is unofficial and
// field presence is not stable, so every absent or mistyped field falls
// back to its zero value instead of failing the whole payload. Malformed
// items inside nested lists decode as near-empty records and are kept,
// matching the remote API consumers' expectations.

func makeApp(data map[string]any) App {
  app := App{
    Id:                  cast.ToInt64(data["steam_appid"]),
    Name:                cast.ToString(data["name"]),
    Type:                cast.ToString(data["type"]),
    IsFree:              cast.ToBool(data["is_free"]),
    DetailedDescription: cast.ToString(data["detailed_description"]),
    AboutTheGame:        cast.ToString(data["about_the_game"]),
    ShortDescription:    cast.ToString(data["short_description"]),
    SupportedLanguages:  cast.ToString(data["supported_languages"]),
    HeaderImage:         cast.ToString(data["header_image"]),
    Developers:          cast.ToStringSlice(data["developers"]),
    Publishers:          cast.ToStringSlice(data["publishers"]),
    Packages:            makeInt64List(data["packages"]),
    PackageGroups:       makeObjectList(data["package_groups"]),
    Platforms:           cast.ToStringMapBool(data["platforms"]),
    Categories:          makeCategories(data["categories"]),
    Genres:              makeGenres(data["genres"]),
    Screenshots:         makeScreenshots(data["screenshots"]),
    Movies:              makeMovies(data["movies"]),
    ReleaseDate:         cast.ToStringMap(data["release_date"]),
    SupportInfo:         cast.ToStringMapString(data["support_info"]),
    Background:          cast.ToString(data["background"]),
    ContentDescriptors:  cast.ToStringMap(data["content_descriptors"]),
  }

  if value, ok := data["website"]; ok && value != nil {
    app.Website = lo.ToPtr(cast.ToString(value))
  }
  if value, ok := data["price_overview"]; ok && value != nil {
    app.PriceOverview = lo.ToPtr(makePriceInfo(cast.ToStringMap(value)))
  }

  return app
}

func makePackage(data map[string]any) Package {
  pack := Package{
    Name:        cast.ToString(data["name"]),
    PageImage:   cast.ToString(data["page_image"]),
    HeaderImage: cast.ToString(data["header_image"]),
    SmallLogo:   cast.ToString(data["small_logo"]),
    Apps:        makeObjectList(data["apps"]),
    Platforms:   cast.ToStringMapBool(data["platforms"]),
    Controller:  cast.ToStringMap(data["controller"]),
    ReleaseDate: cast.ToStringMap(data["release_date"]),
  }

  if value, ok := data["price"]; ok && value != nil {
    pack.Price = lo.ToPtr(makePriceInfo(cast.ToStringMap(value)))
  }

  return pack
}

func makePriceInfo(data map[string]any) PriceInfo {
  return PriceInfo{
    Currency:        cast.ToString(data["currency"]),
    Initial:         cast.ToInt64(data["initial"]),
    Final:           cast.ToInt64(data["final"]),
    DiscountPercent: cast.ToInt64(data["discount_percent"]),
  }
}

func makeFeaturedApps(data map[string]any) FeaturedApps {
  return FeaturedApps{
    LargeCapsules: makeFeaturedAppList(data["large_capsules"]),
    FeaturedWin:   makeFeaturedAppList(data["featured_win"]),
    FeaturedMac:   makeFeaturedAppList(data["featured_mac"]),
    FeaturedLinux: makeFeaturedAppList(data["featured_linux"]),
    Layout:        cast.ToString(data["layout"]),
    Status:        cast.ToInt64(data["status"]),
  }
}

func makeFeaturedCategory(data map[string]any) FeaturedCategory {
  return FeaturedCategory{
    Id:    cast.ToString(data["id"]),
    Name:  cast.ToString(data["name"]),
    Items: makeFeaturedAppList(data["items"]),
  }
}

func makeFeaturedApp(data map[string]any) FeaturedApp {
  app := FeaturedApp{
    Id:                      cast.ToInt64(data["id"]),
    Type:                    cast.ToInt64(data["type"]),
    Name:                    cast.ToString(data["name"]),
    Discounted:              cast.ToBool(data["discounted"]),
    DiscountPercent:         cast.ToInt64(data["discount_percent"]),
    FinalPrice:              cast.ToInt64(data["final_price"]),
    Currency:                cast.ToString(data["currency"]),
    LargeCapsuleImage:       cast.ToString(data["large_capsule_image"]),
    SmallCapsuleImage:       cast.ToString(data["small_capsule_image"]),
    WindowsAvailable:        cast.ToBool(data["windows_available"]),
    MacAvailable:            cast.ToBool(data["mac_available"]),
    LinuxAvailable:          cast.ToBool(data["linux_available"]),
    StreamingVideoAvailable: cast.ToBool(data["streamingvideo_available"]),
    HeaderImage:             cast.ToString(data["header_image"]),
    ControllerSupport:       cast.ToString(data["controller_support"]),
  }

  if value, ok := data["original_price"]; ok && value != nil {
    app.OriginalPrice = lo.ToPtr(cast.ToInt64(value))
  }

  return app
}

func makeFeaturedAppList(value any) []FeaturedApp {
  return lo.Map(cast.ToSlice(value), func(item any, _ int) FeaturedApp {
    return makeFeaturedApp(cast.ToStringMap(item))
  })
}

func makeCategories(value any) []Category {
  return lo.Map(cast.ToSlice(value), func(item any, _ int) Category {
    data := cast.ToStringMap(item)

    return Category{
      Id:          cast.ToInt64(data["id"]),
      Description: cast.ToString(data["description"]),
    }
  })
}

func makeGenres(value any) []Genre {
  return lo.Map(cast.ToSlice(value), func(item any, _ int) Genre {
    data := cast.ToStringMap(item)

    return Genre{
      Id:          cast.ToString(data["id"]),
      Description: cast.ToString(data["description"]),
    }
  })
}

func makeScreenshots(value any) []Screenshot {
  return lo.Map(cast.ToSlice(value), func(item any, _ int) Screenshot {
    data := cast.ToStringMap(item)

    return Screenshot{
      Id:            cast.ToInt64(data["id"]),
      PathThumbnail: cast.ToString(data["path_thumbnail"]),
      PathFull:      cast.ToString(data["path_full"]),
    }
  })
}

func makeMovies(value any) []Movie {
  return lo.Map(cast.ToSlice(value), func(item any, _ int) Movie {
    data := cast.ToStringMap(item)

    return Movie{
      Id:        cast.ToInt64(data["id"]),
      Name:      cast.ToString(data["name"]),
      Thumbnail: cast.ToString(data["thumbnail"]),
      Webm:      cast.ToStringMapString(data["webm"]),
      Mp4:       cast.ToStringMapString(data["mp4"]),
      Highlight: cast.ToBool(data["highlight"]),
    }
  })
}

func makeInt64List(value any) []int64 {
  return lo.Map(cast.ToSlice(value), func(item any, _ int) int64 {
    return cast.ToInt64(item)
  })
}

func makeObjectList(value any) []map[string]any {
  return lo.Map(cast.ToSlice(value), func(item any, _ int) map[string]any {
    return cast.ToStringMap(item)
  })
}
