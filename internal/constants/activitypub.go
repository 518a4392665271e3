package constants

// Federation protocol constants. The delivery and inbox machinery lives
// outside this service, these values are its wire level contract.

// ActivityPubPublic is the special public audience IRI.
const ActivityPubPublic = "https://www.w3.org/ns/activitystreams#Public"

// ActivityPubContext is the JSON-LD context sent with every activity.
var ActivityPubContext = []string{ //nolint:gochecknoglobals
	"https://www.w3.org/ns/activitystreams",
	"https://w3id.org/security/v1",
}

// ActivityPubCollectionPageSize is the number of items per collection page.
const ActivityPubCollectionPageSize = 100

// ActivityPubFetchLimit caps recursive collection fetches from remotes.
const ActivityPubFetchLimit = 500

// AcceptedActivityTypes this instance processes from its inbox.
var AcceptedActivityTypes = []string{ //nolint:gochecknoglobals
	"Create",
	"Update",
	"Delete",
	"Follow",
	"Accept",
	"Reject",
	"Announce",
	"Undo",
	"Like",
	"Dislike",
	"Flag",
	"View",
}

// AcceptedObjectTypes this instance understands as activity payloads.
var AcceptedObjectTypes = []string{ //nolint:gochecknoglobals
	"Video",
	"VideoChannel",
	"Person",
	"Application",
	"Group",
	"Note",
	"CacheFile",
	"Playlist",
}

// RemoteScheme holds the schemes assumed when building URLs for remote
// actors whose scheme is not known yet.
type RemoteScheme struct {
	HTTP string
	WS   string
}

func buildRemoteScheme(test bool) RemoteScheme {
	// local test federations run without TLS
	if test {
		return RemoteScheme{HTTP: "http", WS: "ws"}
	}

	return RemoteScheme{HTTP: "https", WS: "wss"}
}

// RemoteSchemes is the active remote scheme table of this instance.
var RemoteSchemes = buildRemoteScheme(testMode) //nolint:gochecknoglobals

// Well known URL fragments of the federation surface.
const (
	ActivityPubAcceptHeader = `application/activity+json, application/ld+json`
	WebFingerPath           = "/.well-known/webfinger"
	ActorInboxSuffix        = "/inbox"
	ActorOutboxSuffix       = "/outbox"
	ActorFollowersSuffix    = "/followers"
	ActorFollowingSuffix    = "/following"
)
