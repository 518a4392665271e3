package constants

// MimeExt maps a MIME type to its canonical file extension. The reverse
// direction is derived once, see ExtMime.
type MimeExt map[string]string

// VideoMimeExt lists the video containers accepted for upload.
var VideoMimeExt = MimeExt{ //nolint:gochecknoglobals
	"video/webm":       ".webm",
	"video/ogg":        ".ogv",
	"video/mp4":        ".mp4",
	"video/quicktime":  ".mov",
	"video/x-msvideo":  ".avi",
	"video/x-matroska": ".mkv",
}

// ImageMimeExt lists the image types accepted for avatars, banners and
// thumbnails.
var ImageMimeExt = MimeExt{ //nolint:gochecknoglobals
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/jpeg": ".jpg",
}

// CaptionMimeExt lists the subtitle formats accepted for captions.
var CaptionMimeExt = MimeExt{ //nolint:gochecknoglobals
	"text/vtt":             ".vtt",
	"application/x-subrip": ".srt",
	"text/plain":           ".srt",
}

// TorrentMimeExt lists the torrent type used by the P2P layer.
var TorrentMimeExt = MimeExt{ //nolint:gochecknoglobals
	"application/x-bittorrent": ".torrent",
}

// ExtMime is the reverse of a MimeExt table. Where several MIME types
// share an extension the first table wins, later ones are ignored.
func (m MimeExt) ExtMime() map[string]string {
	out := make(map[string]string, len(m))

	for mime, ext := range m {
		if _, taken := out[ext]; !taken {
			out[ext] = mime
		}
	}

	return out
}

// videoExtMime is derived once at startup.
var videoExtMime = VideoMimeExt.ExtMime() //nolint:gochecknoglobals

// VideoMimeOf returns the MIME type for a video file extension (with
// leading dot), empty if the extension is not accepted.
func VideoMimeOf(ext string) string { return videoExtMime[ext] }

// IsVideoMime reports whether mime is an accepted upload container.
func IsVideoMime(mime string) bool {
	_, ok := VideoMimeExt[mime]
	return ok
}
