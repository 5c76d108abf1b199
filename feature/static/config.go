package static

// Config controls how files are served from the document root.
type Config struct {
	// Root is the absolute document root.
	Root string
	// Index is the file served for directory requests.
	Index string
	// Browse enables directory listings when no index file exists.
	Browse bool
}
