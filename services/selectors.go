package services

import "regexp"

// LinkedIn post page selectors and CDN patterns
// These are isolated here because LinkedIn changes their markup frequently
// Update these when extraction breaks

const (
	// The public post page carries the display text in the head metadata
	PostDescription = `meta[name="description"]`

	// Media markers
	OGImage      = `meta[property="og:image"]`
	OGVideo      = `meta[property^="og:video"]`
	VideoElement = `video`
	ImageElement = `img[src]`
)

var (
	// articleShareImage matches og:image URLs LinkedIn emits for shared media
	articleShareImage = regexp.MustCompile(`^https://media\.licdn\.com/dms/image/sync/v2/.+/articleshare`)
	// mediaCDNImage matches any image served from LinkedIn's media CDN
	mediaCDNImage = regexp.MustCompile(`^https://media\.licdn\.com/dms/image/`)
)

// aeroImagePrefix is the static-asset variant of the shared-media og:image.
const aeroImagePrefix = "https://static.licdn.com/aero-v1"
