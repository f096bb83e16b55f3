// Package commands defines the landing CLI.
//
// Commands
//
//   - serve          Serve the page (add --dev for live reload of the content file)
//   - render         Write the static site for every theme
//   - schema         Print the LocalBusiness JSON-LD record
//   - themes         List the page themes
//   - videos         Fill in video titles and thumbnails with yt-dlp
//   - tools install  Download the yt-dlp binary
//
// # Configuration
//
// Settings come from flags, LANDING_* environment variables (a .env file in
// the working directory is read first), an optional landing.yaml, and
// defaults, in that order of precedence.
package commands
