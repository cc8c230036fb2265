package test

import (
	"fmt"
	"time"

	"post_sentinel/dal"
	"post_sentinel/logic"
)

func makePost(ix int, handle string, postedAt time.Time) *dal.Post {
	return &dal.Post{
		PostId:    fmt.Sprintf("17%04d", ix),
		Handle:    handle,
		Text:      fmt.Sprintf("Post number %d", ix),
		Link:      fmt.Sprintf("https://gateway.example/%s/status/17%04d", handle, ix),
		PostedAt:  postedAt,
		ScrapedAt: postedAt,
	}
}

func makeRawPost(ix int, handle string, postedAt time.Time) *logic.RawPost {
	return &logic.RawPost{
		PostId:   fmt.Sprintf("17%04d", ix),
		Handle:   handle,
		Text:     fmt.Sprintf("Post number %d", ix),
		Link:     fmt.Sprintf("https://gateway.example/%s/status/17%04d", handle, ix),
		PostedAt: postedAt,
	}
}
