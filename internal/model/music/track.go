package music

import "github.com/capycare/capycare/backend/internal/model/mood"

// Track describes one playable recommendation.
type Track struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Genre      string `json:"genre,omitempty"`
	YouTubeID  string `json:"youtubeId,omitempty"`
	SpotifyURL string `json:"spotifyUrl,omitempty"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

// Catalog returns the curated per-mood track tables. Selection among a
// mood's entries is uniform-random; unknown moods fall back to the
// happy table.
func Catalog() map[mood.Mood][]Track {
	return map[mood.Mood][]Track{
		mood.Happy: {
			{Title: "Happy", Artist: "Pharrell Williams", Genre: "Pop", YouTubeID: "ZbZSe6N_BXs", SpotifyURL: "https://open.spotify.com/track/60nZcImufyMA1MKQY3dcCH"},
			{Title: "Good Life", Artist: "OneRepublic", Genre: "Pop Rock", YouTubeID: "h-pFUljFVeM", SpotifyURL: "https://open.spotify.com/track/5EciRz1TbGxRvlJ9Cy2Gre"},
			{Title: "Walking on Sunshine", Artist: "Katrina & The Waves", Genre: "Pop", YouTubeID: "iPUmE-tne5U", SpotifyURL: "https://open.spotify.com/track/05wIrZSwuaVWhcv5FfqeH0"},
			{Title: "Don't Stop Believin'", Artist: "Journey", Genre: "Rock", YouTubeID: "1k8craCGp9U", SpotifyURL: "https://open.spotify.com/track/4bHsxqR3GMrXTxEPL5vYe1"},
			{Title: "I Gotta Feeling", Artist: "The Black Eyed Peas", Genre: "Pop", YouTubeID: "uSD4vsh1zBA", SpotifyURL: "https://open.spotify.com/track/2H1047e0oMSj10dgp7p2VG"},
		},
		mood.Sad: {
			{Title: "Fix You", Artist: "Coldplay", Genre: "Alternative Rock", YouTubeID: "k4V3Mo61fJM", SpotifyURL: "https://open.spotify.com/track/7LVHVU3tWfcxj5aiPFEW4Q"},
			{Title: "The Scientist", Artist: "Coldplay", Genre: "Alternative Rock", YouTubeID: "RB-RcX5DS5A", SpotifyURL: "https://open.spotify.com/track/75JFxkI2RXiU7L9VXzMkle"},
			{Title: "Mad World", Artist: "Gary Jules", Genre: "Alternative", YouTubeID: "4N3N1MlvVc4", SpotifyURL: "https://open.spotify.com/track/3JOVTaI5DrKJmbyfcGX1y2"},
			{Title: "Everybody Hurts", Artist: "R.E.M.", Genre: "Alternative Rock", YouTubeID: "ijZRCIrTgQc", SpotifyURL: "https://open.spotify.com/track/4tCWPkNm9Dx1x52v65aByu"},
			{Title: "Hallelujah", Artist: "Jeff Buckley", Genre: "Folk Rock", YouTubeID: "y8AWFf7EAc4", SpotifyURL: "https://open.spotify.com/track/3pRaLNL3b8x5uBOcsSVvdT"},
		},
		mood.Anxious: {
			{Title: "Weightless", Artist: "Marconi Union", Genre: "Ambient", YouTubeID: "UfcAVejslrU", SpotifyURL: "https://open.spotify.com/track/3r8RuvgbX9s7ammBn07D3W"},
			{Title: "Claire de Lune", Artist: "Debussy", Genre: "Classical", YouTubeID: "CvFH_6DNRCY", SpotifyURL: "https://open.spotify.com/track/0QqjruHZtBmzJ5d5HnUjE5"},
			{Title: "River Flows in You", Artist: "Yiruma", Genre: "Piano", YouTubeID: "7maJOI3QMu0", SpotifyURL: "https://open.spotify.com/track/2qpsUQ1Gz9Zmi7OftCaKzE"},
			{Title: "Gymnopedie No. 1", Artist: "Erik Satie", Genre: "Classical", YouTubeID: "S-Xm7s9eGxU", SpotifyURL: "https://open.spotify.com/track/6uVJEdPkrJ7exb7Tg4zNAf"},
			{Title: "The Sound of Silence", Artist: "Disturbed", Genre: "Rock", YouTubeID: "u9Dg-g7t2l4", SpotifyURL: "https://open.spotify.com/track/1j8z4TTjJ1YOdoFEDwJTQa"},
		},
		mood.Calm: {
			{Title: "Weightless", Artist: "Marconi Union", Genre: "Ambient", YouTubeID: "UfcAVejslrU", SpotifyURL: "https://open.spotify.com/track/3r8RuvgbX9s7ammBn07D3W"},
			{Title: "Claire de Lune", Artist: "Debussy", Genre: "Classical", YouTubeID: "CvFH_6DNRCY", SpotifyURL: "https://open.spotify.com/track/0QqjruHZtBmzJ5d5HnUjE5"},
			{Title: "River Flows in You", Artist: "Yiruma", Genre: "Piano", YouTubeID: "7maJOI3QMu0", SpotifyURL: "https://open.spotify.com/track/2qpsUQ1Gz9Zmi7OftCaKzE"},
			{Title: "Gymnopedie No. 1", Artist: "Erik Satie", Genre: "Classical", YouTubeID: "S-Xm7s9eGxU", SpotifyURL: "https://open.spotify.com/track/6uVJEdPkrJ7exb7Tg4zNAf"},
			{Title: "The Sound of Silence", Artist: "Disturbed", Genre: "Rock", YouTubeID: "u9Dg-g7t2l4", SpotifyURL: "https://open.spotify.com/track/1j8z4TTjJ1YOdoFEDwJTQa"},
		},
		mood.Energized: {
			{Title: "Eye of the Tiger", Artist: "Survivor", Genre: "Rock", YouTubeID: "btPJPFnesV4", SpotifyURL: "https://open.spotify.com/track/2HHtWyy5CgaQbC7XSoOb0e"},
			{Title: "We Will Rock You", Artist: "Queen", Genre: "Rock", YouTubeID: "-tJYN-eG1zk", SpotifyURL: "https://open.spotify.com/track/54flyrjcdnQdco7300avMJ"},
			{Title: "Stronger", Artist: "Kanye West", Genre: "Hip Hop", YouTubeID: "PsO6ZnUZI0g", SpotifyURL: "https://open.spotify.com/track/0fBWpe93ON8CqvuobxEk9R"},
			{Title: "Lose Yourself", Artist: "Eminem", Genre: "Hip Hop", YouTubeID: "xFYQQPAOz7Y", SpotifyURL: "https://open.spotify.com/track/5Z01UMMf7V1o0MzF86s6WJ"},
			{Title: "Thunderstruck", Artist: "AC/DC", Genre: "Rock", YouTubeID: "v2AC41dglnM", SpotifyURL: "https://open.spotify.com/track/57bgtoPSgt236HzfBOd8kj"},
		},
	}
}
