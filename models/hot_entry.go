package models

// HotEntry is one row of the hot100 chart table: a song/artist pair with an
// auto-assigned surrogate id. The (artist, song) pair is unique across the
// table; song and artist also carry plain indexes so either field can be
// filtered on independently.
type HotEntry struct {
	ID     uint   `json:"id" gorm:"primarykey"`
	Song   string `json:"song" gorm:"size:80;index:idx_hot100_song;uniqueIndex:idx_hot100_artist_song,priority:2"`
	Artist string `json:"artist" gorm:"size:80;index:idx_hot100_artist;uniqueIndex:idx_hot100_artist_song,priority:1"`
}

func (HotEntry) TableName() string {
	return "hot100"
}
