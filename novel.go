package pixiv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// NovelDetail fetches a single novel.
func (c *Client) NovelDetail(ctx context.Context, novelID uint64) (*Novel, error) {
	args := url.Values{}
	setUint(args, "novel_id", novelID)
	var out Novel
	if err := c.call(ctx, "NovelDetail", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NovelSeriesOptions are the optional parameters of NovelSeries.
type NovelSeriesOptions struct {
	Filter    Filter
	LastOrder string
}

// NovelSeries fetches a novel series with its entries.
func (c *Client) NovelSeries(ctx context.Context, seriesID uint64, opts *NovelSeriesOptions) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "series_id", seriesID)
	if opts != nil {
		setStr(args, "filter", string(opts.Filter))
		setStr(args, "last_order", opts.LastOrder)
	}
	var out json.RawMessage
	if err := c.call(ctx, "NovelSeries", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NovelCommentsOptions are the optional parameters of NovelComments.
type NovelCommentsOptions struct {
	Offset               string
	IncludeTotalComments bool
}

// NovelComments lists comments on a novel, paged.
func (c *Client) NovelComments(ctx context.Context, novelID uint64, opts *NovelCommentsOptions) (*NovelComments, error) {
	args := url.Values{}
	setUint(args, "novel_id", novelID)
	if opts != nil {
		setStr(args, "offset", opts.Offset)
		setBool(args, "include_total_comments", opts.IncludeTotalComments)
	}
	var out NovelComments
	if err := c.call(ctx, "NovelComments", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NovelNew lists the newest public novels.
func (c *Client) NovelNew(ctx context.Context, filter Filter, maxNovelID string) (json.RawMessage, error) {
	args := url.Values{}
	setStr(args, "filter", string(filter))
	setStr(args, "max_novel_id", maxNovelID)
	var out json.RawMessage
	if err := c.call(ctx, "NovelNew", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NovelFollow lists new novels from followed users.
func (c *Client) NovelFollow(ctx context.Context, restrict Restrict, offset string) (json.RawMessage, error) {
	args := url.Values{}
	setStr(args, "restrict", string(restrict))
	setStr(args, "offset", offset)
	var out json.RawMessage
	if err := c.call(ctx, "NovelFollow", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NovelRecommendedOptions are the optional parameters of NovelRecommended.
type NovelRecommendedOptions struct {
	IncludeRankingLabel       bool
	Filter                    Filter
	Offset                    string
	IncludeRankingNovels      bool
	AlreadyRecommended        []string
	MaxBookmarkIDForRecommend string
	IncludePrivacyPolicy      string
}

// NovelRecommended fetches personalized novel recommendations.
func (c *Client) NovelRecommended(ctx context.Context, opts *NovelRecommendedOptions) (json.RawMessage, error) {
	args := url.Values{}
	if opts != nil {
		setBool(args, "include_ranking_label", opts.IncludeRankingLabel)
		setStr(args, "filter", string(opts.Filter))
		setStr(args, "offset", opts.Offset)
		setBool(args, "include_ranking_novels", opts.IncludeRankingNovels)
		if len(opts.AlreadyRecommended) > 0 {
			args.Set("already_recommended", strings.Join(opts.AlreadyRecommended, ","))
		}
		setStr(args, "max_bookmark_id_for_recommend", opts.MaxBookmarkIDForRecommend)
		setStr(args, "include_privacy_policy", opts.IncludePrivacyPolicy)
	}
	var out json.RawMessage
	if err := c.call(ctx, "NovelRecommended", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// webviewNovelRe extracts the novel JSON embedded in the webview HTML.
var webviewNovelRe = regexp.MustCompile(`novel:\s(\{.+\}),\s+isOwnWork`)

// WebviewNovelRaw fetches the webview rendering of a novel as raw HTML.
func (c *Client) WebviewNovelRaw(ctx context.Context, novelID uint64) (string, error) {
	args := url.Values{}
	setUint(args, "id", novelID)
	var out []byte
	if err := c.call(ctx, "WebviewNovel", args, &out); err != nil {
		return "", err
	}
	return string(out), nil
}

// WebviewNovel fetches a novel's full text by extracting the JSON payload the
// webview embeds in its HTML.
func (c *Client) WebviewNovel(ctx context.Context, novelID uint64) (*WebviewNovel, error) {
	text, err := c.WebviewNovelRaw(ctx, novelID)
	if err != nil {
		return nil, err
	}
	m := webviewNovelRe.FindStringSubmatch(text)
	if m == nil {
		return nil, &DecodeError{Body: []byte(truncate(text, 500)), Err: fmt.Errorf("no embedded novel payload")}
	}
	var out WebviewNovel
	if err := json.Unmarshal([]byte(m[1]), &out); err != nil {
		return nil, &DecodeError{Body: []byte(m[1]), Err: err}
	}
	return &out, nil
}
