package constants

// VideoCategories maps the stable category codes to display labels.
// Codes are stable across versions, stored references depend on them.
var VideoCategories = map[int]string{ //nolint:gochecknoglobals
	1:  "Music",
	2:  "Films",
	3:  "Vehicles",
	4:  "Art",
	5:  "Sports",
	6:  "Travels",
	7:  "Gaming",
	8:  "People",
	9:  "Comedy",
	10: "Entertainment",
	11: "News & Politics",
	12: "How To",
	13: "Education",
	14: "Activism",
	15: "Science & Technology",
	16: "Animals",
	17: "Kids",
	18: "Food",
}

// VideoLicences maps the stable licence codes to display labels.
var VideoLicences = map[int]string{ //nolint:gochecknoglobals
	1: "Attribution",
	2: "Attribution - Share Alike",
	3: "Attribution - No Derivatives",
	4: "Attribution - Non Commercial",
	5: "Attribution - Non Commercial - Share Alike",
	6: "Attribution - Non Commercial - No Derivatives",
	7: "Public Domain Dedication",
}

// VideoLanguages maps ISO 639 codes to display labels. Only the subset an
// instance typically exposes in the upload form, extended on demand.
var VideoLanguages = map[string]string{ //nolint:gochecknoglobals
	"ar":  "Arabic",
	"de":  "German",
	"el":  "Greek",
	"en":  "English",
	"es":  "Spanish",
	"fa":  "Persian",
	"fr":  "French",
	"hi":  "Hindi",
	"it":  "Italian",
	"ja":  "Japanese",
	"ko":  "Korean",
	"nl":  "Dutch",
	"pl":  "Polish",
	"pt":  "Portuguese",
	"ru":  "Russian",
	"sv":  "Swedish",
	"tr":  "Turkish",
	"uk":  "Ukrainian",
	"zh":  "Chinese",
	"zxx": "No linguistic content",
}

// Video privacy levels.
const (
	VideoPrivacyPublic   = 1
	VideoPrivacyUnlisted = 2
	VideoPrivacyPrivate  = 3
	VideoPrivacyInternal = 4
)

// VideoPrivacies maps privacy codes to display labels.
var VideoPrivacies = map[int]string{ //nolint:gochecknoglobals
	VideoPrivacyPublic:   "Public",
	VideoPrivacyUnlisted: "Unlisted",
	VideoPrivacyPrivate:  "Private",
	VideoPrivacyInternal: "Internal",
}

// Video lifecycle states.
const (
	VideoStatePublished         = 1
	VideoStateToTranscode       = 2
	VideoStateToImport          = 3
	VideoStateWaitingForLive    = 4
	VideoStateLiveEnded         = 5
	VideoStateToMoveToStorage   = 6
	VideoStateTranscodingFailed = 7
	VideoStateMoveFailed        = 8
	VideoStateToEdit            = 9
)

// VideoStates maps state codes to display labels.
var VideoStates = map[int]string{ //nolint:gochecknoglobals
	VideoStatePublished:         "Published",
	VideoStateToTranscode:       "To transcode",
	VideoStateToImport:          "To import",
	VideoStateWaitingForLive:    "Waiting for livestream",
	VideoStateLiveEnded:         "Livestream ended",
	VideoStateToMoveToStorage:   "To move to an external storage",
	VideoStateTranscodingFailed: "Transcoding failed",
	VideoStateMoveFailed:        "Move to an external storage failed",
	VideoStateToEdit:            "To edit",
}

// CategoryLabel returns the label for a category code, empty if unknown.
func CategoryLabel(code int) string { return VideoCategories[code] }

// LicenceLabel returns the label for a licence code, empty if unknown.
func LicenceLabel(code int) string { return VideoLicences[code] }

// LanguageLabel returns the label for a language code, empty if unknown.
func LanguageLabel(code string) string { return VideoLanguages[code] }

// PrivacyLabel returns the label for a privacy code, empty if unknown.
func PrivacyLabel(code int) string { return VideoPrivacies[code] }

// StateLabel returns the label for a state code, empty if unknown.
func StateLabel(code int) string { return VideoStates[code] }
