package domain

// Scrob is one recorded play. Immutable and permanent once written:
// there is no edit or delete path through any service.
type Scrob struct {
	ID        string
	UserID    string
	Artist    string
	Track     string
	Album     string // optional, empty when unknown
	Duration  *int64 // seconds, optional
	Timestamp int64  // when the track was played (caller-supplied, unix seconds)
	CreatedAt int64  // when the server accepted it (unix seconds)
}

// TopArtist is one row of the artist ranking.
type TopArtist struct {
	Name  string
	Count int64
}

// TopTrack is one row of the track ranking. Album is not part of the
// grouping key, so the same track across albums aggregates together.
type TopTrack struct {
	Artist string
	Track  string
	Count  int64
}
