// internal/services/catalog_resolver.go
package services

import (
	"net/url"
	"strings"
)

// Preset paths are the canonical locations of the fixed catalog views.
// Every one of them funnels back into the generic listing by re-injecting
// its defining parameters, so the listing logic only ever reads raw
// parameters and never page identity.
const (
	PathShop       = "/boutique"
	PathCategory   = "/boutique/categorie"
	PathWishlist   = "/boutique/wishlist"
	PathPromotions = "/boutique/promotions"
	PathNouveautes = "/boutique/nouveautes"
)

// ResolveListing decides whether a raw shop query belongs at a canonical
// URL. It returns the redirect target and true when the caller must issue
// a permanent redirect, in this order of precedence:
//
//  1. a category parameter relocates into the path,
//  2. wishlist=1, then promotions=1, then sort=latest / nouveautes=1
//     relocate to their preset path with the triggering parameters
//     stripped and everything else kept.
func ResolveListing(query url.Values) (string, bool) {
	if cat := strings.ToLower(strings.TrimSpace(query.Get("category"))); cat != "" {
		rest := cloneValues(query, "category")
		return buildPath(PathCategory+"/"+url.PathEscape(cat), rest), true
	}

	if query.Get("wishlist") == "1" {
		rest := cloneValues(query, "wishlist")
		return buildPath(PathWishlist, rest), true
	}

	if query.Get("promotions") == "1" {
		rest := cloneValues(query, "promotions")
		return buildPath(PathPromotions, rest), true
	}

	if query.Get("sort") == "latest" || query.Get("nouveautes") == "1" {
		rest := cloneValues(query, "nouveautes")
		// Only the triggering sort value is stripped; any other sort
		// key travels along like every non-preset parameter.
		if rest.Get("sort") == "latest" {
			rest.Del("sort")
		}
		return buildPath(PathNouveautes, rest), true
	}

	return "", false
}

// DetectPreset names the preset a parameter set would resolve to, without
// building a redirect. Priority matches ResolveListing.
func DetectPreset(query url.Values) string {
	switch {
	case query.Get("wishlist") == "1":
		return "wishlist"
	case query.Get("promotions") == "1":
		return "promotions"
	case query.Get("sort") == "latest" || query.Get("nouveautes") == "1":
		return "nouveautes"
	default:
		return ""
	}
}

func cloneValues(query url.Values, drop ...string) url.Values {
	rest := url.Values{}
	for k, vs := range query {
		skip := false
		for _, d := range drop {
			if k == d {
				skip = true
				break
			}
		}
		if !skip {
			rest[k] = append([]string(nil), vs...)
		}
	}
	return rest
}

func buildPath(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
