package pixiv

import (
	"context"
	"encoding/json"
	"net/url"
)

// SearchIllustOptions are the optional parameters of SearchIllust.
type SearchIllustOptions struct {
	SearchTarget SearchTarget
	Sort         Sort
	Duration     Duration
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD
	Filter       Filter
	SearchAIType string
	Offset       string
}

// SearchIllust searches illustrations by word, paged.
func (c *Client) SearchIllust(ctx context.Context, word string, opts *SearchIllustOptions) (*SearchIllusts, error) {
	args := url.Values{}
	args.Set("word", word)
	if opts != nil {
		setStr(args, "search_target", string(opts.SearchTarget))
		setStr(args, "sort", string(opts.Sort))
		setStr(args, "duration", string(opts.Duration))
		setStr(args, "start_date", opts.StartDate)
		setStr(args, "end_date", opts.EndDate)
		setStr(args, "filter", string(opts.Filter))
		setStr(args, "search_ai_type", opts.SearchAIType)
		setStr(args, "offset", opts.Offset)
	}
	var out SearchIllusts
	if err := c.call(ctx, "SearchIllust", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchNovelOptions are the optional parameters of SearchNovel.
type SearchNovelOptions struct {
	SearchTarget                SearchTarget
	Sort                        Sort
	MergePlainKeywordResults    string
	IncludeTranslatedTagResults string
	StartDate                   string
	EndDate                     string
	Filter                      Filter
	SearchAIType                string
	Offset                      string
}

// SearchNovel searches novels by word, paged.
func (c *Client) SearchNovel(ctx context.Context, word string, opts *SearchNovelOptions) (*SearchNovels, error) {
	args := url.Values{}
	args.Set("word", word)
	if opts != nil {
		setStr(args, "search_target", string(opts.SearchTarget))
		setStr(args, "sort", string(opts.Sort))
		setStr(args, "merge_plain_keyword_results", opts.MergePlainKeywordResults)
		setStr(args, "include_translated_tag_results", opts.IncludeTranslatedTagResults)
		setStr(args, "start_date", opts.StartDate)
		setStr(args, "end_date", opts.EndDate)
		setStr(args, "filter", string(opts.Filter))
		setStr(args, "search_ai_type", opts.SearchAIType)
		setStr(args, "offset", opts.Offset)
	}
	var out SearchNovels
	if err := c.call(ctx, "SearchNovel", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchUserOptions are the optional parameters of SearchUser.
type SearchUserOptions struct {
	Sort     Sort
	Duration Duration
	Filter   Filter
	Offset   string
}

// SearchUser searches users by name.
func (c *Client) SearchUser(ctx context.Context, word string, opts *SearchUserOptions) (json.RawMessage, error) {
	args := url.Values{}
	args.Set("word", word)
	if opts != nil {
		setStr(args, "sort", string(opts.Sort))
		setStr(args, "duration", string(opts.Duration))
		setStr(args, "filter", string(opts.Filter))
		setStr(args, "offset", opts.Offset)
	}
	var out json.RawMessage
	if err := c.call(ctx, "SearchUser", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}
