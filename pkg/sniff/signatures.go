package sniff

// part requires magic to appear at offset.
type part struct {
	offset int
	magic  []byte
}

// signature describes one known format. All parts must match.
type signature struct {
	mime  string
	ext   string
	parts []part
}

func at(offset int, magic string) part {
	return part{offset: offset, magic: []byte(magic)}
}

func sig(mime, ext string, parts ...part) signature {
	return signature{mime: mime, ext: ext, parts: parts}
}

// signatures is evaluated in order; first match wins. Formats that share a
// container prefix (zip, RIFF, ftyp, ar, TIFF) list the specific variants
// before the generic one.
var signatures = []signature{
	// images
	sig("image/jpeg", "jpg", at(0, "\xFF\xD8\xFF")),
	sig("image/png", "png", at(0, "\x89PNG\r\n\x1A\n")),
	sig("image/gif", "gif", at(0, "GIF8")),
	sig("image/webp", "webp", at(0, "RIFF"), at(8, "WEBP")),
	sig("image/x-canon-cr2", "cr2", at(0, "II*\x00"), at(8, "CR")),
	sig("image/tiff", "tif", at(0, "II*\x00")),
	sig("image/tiff", "tif", at(0, "MM\x00*")),
	sig("image/vnd.adobe.photoshop", "psd", at(0, "8BPS")),
	sig("image/vnd.microsoft.icon", "ico", at(0, "\x00\x00\x01\x00")),
	sig("image/heif", "heif", at(4, "ftypheic")),
	sig("image/heif", "heif", at(4, "ftypmif1")),
	sig("image/avif", "avif", at(4, "ftypavif")),
	sig("image/jxl", "jxl", at(0, "\x00\x00\x00\x0CJXL \x0D\x0A\x87\x0A")),

	// video
	sig("video/x-msvideo", "avi", at(0, "RIFF"), at(8, "AVI ")),
	sig("video/quicktime", "mov", at(4, "ftypqt  ")),
	sig("video/3gpp", "3gp", at(4, "ftyp3g")),
	sig("audio/m4a", "m4a", at(4, "ftypM4A ")),
	sig("video/mp4", "mp4", at(4, "ftyp")),
	sig("video/x-matroska", "mkv", at(0, "\x1A\x45\xDF\xA3")),
	sig("video/x-flv", "flv", at(0, "FLV\x01")),
	sig("video/x-ms-wmv", "wmv", at(0, "\x30\x26\xB2\x75\x8E\x66\xCF\x11")),
	sig("video/mpeg", "mpg", at(0, "\x00\x00\x01\xBA")),
	sig("video/mpeg", "mpg", at(0, "\x00\x00\x01\xB3")),

	// audio
	sig("audio/x-wav", "wav", at(0, "RIFF"), at(8, "WAVE")),
	sig("audio/x-aiff", "aiff", at(0, "FORM"), at(8, "AIFF")),
	sig("audio/mpeg", "mp3", at(0, "ID3")),
	sig("audio/mpeg", "mp3", at(0, "\xFF\xFB")),
	sig("audio/mpeg", "mp3", at(0, "\xFF\xF3")),
	sig("audio/mpeg", "mp3", at(0, "\xFF\xF2")),
	sig("audio/x-flac", "flac", at(0, "fLaC")),
	sig("audio/ogg", "ogg", at(0, "OggS")),
	sig("audio/midi", "mid", at(0, "MThd")),
	sig("audio/amr", "amr", at(0, "#!AMR")),

	// archives and containers
	sig("application/epub+zip", "epub", at(0, "PK\x03\x04"), at(30, "mimetypeapplication/epub+zip")),
	sig("application/vnd.oasis.opendocument.text", "odt", at(0, "PK\x03\x04"), at(30, "mimetypeapplication/vnd.oasis.opendocument.text")),
	sig("application/vnd.oasis.opendocument.spreadsheet", "ods", at(0, "PK\x03\x04"), at(30, "mimetypeapplication/vnd.oasis.opendocument.spreadsheet")),
	sig("application/vnd.oasis.opendocument.presentation", "odp", at(0, "PK\x03\x04"), at(30, "mimetypeapplication/vnd.oasis.opendocument.presentation")),
	sig("application/zip", "zip", at(0, "PK\x03\x04")),
	sig("application/zip", "zip", at(0, "PK\x05\x06")),
	sig("application/zip", "zip", at(0, "PK\x07\x08")),
	sig("application/gzip", "gz", at(0, "\x1F\x8B\x08")),
	sig("application/x-bzip2", "bz2", at(0, "BZh")),
	sig("application/x-xz", "xz", at(0, "\xFD7zXZ\x00")),
	sig("application/x-7z-compressed", "7z", at(0, "7z\xBC\xAF\x27\x1C")),
	sig("application/vnd.rar", "rar", at(0, "Rar!\x1A\x07")),
	sig("application/zstd", "zst", at(0, "\x28\xB5\x2F\xFD")),
	sig("application/x-lz4", "lz4", at(0, "\x04\x22\x4D\x18")),
	sig("application/x-tar", "tar", at(257, "ustar")),
	sig("application/vnd.ms-cab-compressed", "cab", at(0, "MSCF")),
	sig("application/vnd.debian.binary-package", "deb", at(0, "!<arch>\ndebian-binary")),
	sig("application/x-unix-archive", "ar", at(0, "!<arch>\n")),
	sig("application/x-rpm", "rpm", at(0, "\xED\xAB\xEE\xDB")),
	sig("application/vnd.sqlite3", "sqlite", at(0, "SQLite format 3\x00")),

	// executables
	sig("application/x-executable", "elf", at(0, "\x7FELF")),
	sig("application/vnd.microsoft.portable-executable", "exe", at(0, "MZ")),
	sig("application/x-mach-binary", "macho", at(0, "\xFE\xED\xFA\xCE")),
	sig("application/x-mach-binary", "macho", at(0, "\xFE\xED\xFA\xCF")),
	sig("application/x-mach-binary", "macho", at(0, "\xCE\xFA\xED\xFE")),
	sig("application/x-mach-binary", "macho", at(0, "\xCF\xFA\xED\xFE")),
	sig("application/java", "class", at(0, "\xCA\xFE\xBA\xBE")),
	sig("application/wasm", "wasm", at(0, "\x00asm")),
	sig("application/vnd.android.dex", "dex", at(0, "dex\n")),
	sig("application/x-shockwave-flash", "swf", at(0, "FWS")),
	sig("application/x-shockwave-flash", "swf", at(0, "CWS")),

	// documents
	sig("application/pdf", "pdf", at(0, "%PDF")),
	sig("application/rtf", "rtf", at(0, "{\\rtf")),
	sig("application/postscript", "ps", at(0, "%!")),
	sig("application/x-ole-storage", "ole", at(0, "\xD0\xCF\x11\xE0\xA1\xB1\x1A\xE1")),

	// fonts
	sig("font/woff", "woff", at(0, "wOFF")),
	sig("font/woff2", "woff2", at(0, "wOF2")),
	sig("font/ttf", "ttf", at(0, "\x00\x01\x00\x00\x00")),
	sig("font/otf", "otf", at(0, "OTTO")),
}
