package pixiv

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// IllustDetail fetches a single illustration.
func (c *Client) IllustDetail(ctx context.Context, illustID uint64) (*IllustDetail, error) {
	args := url.Values{}
	setUint(args, "illust_id", illustID)
	var out IllustDetail
	if err := c.call(ctx, "IllustDetail", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IllustFollowOptions are the optional parameters of IllustFollow.
type IllustFollowOptions struct {
	Restrict Restrict
	Offset   string
}

// IllustFollow lists new works from followed users.
func (c *Client) IllustFollow(ctx context.Context, opts *IllustFollowOptions) (json.RawMessage, error) {
	args := url.Values{}
	if opts != nil {
		setStr(args, "restrict", string(opts.Restrict))
		setStr(args, "offset", opts.Offset)
	}
	var out json.RawMessage
	if err := c.call(ctx, "IllustFollow", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CommentsOptions are the optional parameters of the comment listings.
type CommentsOptions struct {
	Offset               string
	IncludeTotalComments bool
}

// IllustComments lists comments on an illustration.
func (c *Client) IllustComments(ctx context.Context, illustID uint64, opts *CommentsOptions) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "illust_id", illustID)
	if opts != nil {
		setStr(args, "offset", opts.Offset)
		setBool(args, "include_total_comments", opts.IncludeTotalComments)
	}
	var out json.RawMessage
	if err := c.call(ctx, "IllustComments", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IllustRankingOptions are the optional parameters of IllustRanking.
type IllustRankingOptions struct {
	Mode   RankingMode
	Filter Filter
	Date   string // YYYY-MM-DD
	Offset string
}

// IllustRanking fetches a ranking board (daily by default).
func (c *Client) IllustRanking(ctx context.Context, opts *IllustRankingOptions) (json.RawMessage, error) {
	args := url.Values{}
	if opts != nil {
		setStr(args, "mode", string(opts.Mode))
		setStr(args, "filter", string(opts.Filter))
		setStr(args, "date", opts.Date)
		setStr(args, "offset", opts.Offset)
	}
	var out json.RawMessage
	if err := c.call(ctx, "IllustRanking", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TrendingTagsIllust fetches currently trending tags.
func (c *Client) TrendingTagsIllust(ctx context.Context, filter Filter) (json.RawMessage, error) {
	args := url.Values{}
	setStr(args, "filter", string(filter))
	var out json.RawMessage
	if err := c.call(ctx, "TrendingTagsIllust", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IllustNewOptions are the optional parameters of IllustNew.
type IllustNewOptions struct {
	ContentType IllustType
	Filter      Filter
	MaxIllustID string
}

// IllustNew lists the newest public works.
func (c *Client) IllustNew(ctx context.Context, opts *IllustNewOptions) (json.RawMessage, error) {
	args := url.Values{}
	if opts != nil {
		setStr(args, "content_type", string(opts.ContentType))
		setStr(args, "filter", string(opts.Filter))
		setStr(args, "max_illust_id", opts.MaxIllustID)
	}
	var out json.RawMessage
	if err := c.call(ctx, "IllustNew", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IllustRelatedOptions are the optional parameters of IllustRelated.
type IllustRelatedOptions struct {
	Filter        Filter
	SeedIllustIDs []string
	Offset        string
	Viewed        []string
}

// IllustRelated lists works related to a given illustration.
func (c *Client) IllustRelated(ctx context.Context, illustID uint64, opts *IllustRelatedOptions) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "illust_id", illustID)
	if opts != nil {
		setStr(args, "filter", string(opts.Filter))
		setStr(args, "offset", opts.Offset)
		for _, id := range opts.SeedIllustIDs {
			args.Add("seed_illust_ids[]", id)
		}
		for _, id := range opts.Viewed {
			args.Add("viewed[]", id)
		}
	}
	var out json.RawMessage
	if err := c.call(ctx, "IllustRelated", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IllustRecommendedOptions are the optional parameters of IllustRecommended.
type IllustRecommendedOptions struct {
	ContentType                  IllustType
	IncludeRankingLabel          bool
	Filter                       Filter
	MaxBookmarkIDForRecommend    string
	MinBookmarkIDForRecentIllust string
	Offset                       string
	IncludeRankingIllusts        bool
	Viewed                       []string
	// BookmarkIllustIDs seeds recommendations for unauthenticated clients;
	// ignored when the client is authenticated.
	BookmarkIllustIDs    []string
	IncludePrivacyPolicy string
}

// IllustRecommended fetches personalized recommendations. Unauthenticated
// clients are routed to the nologin variant of the endpoint.
func (c *Client) IllustRecommended(ctx context.Context, opts *IllustRecommendedOptions) (json.RawMessage, error) {
	op := "IllustRecommended"
	if c.tokens.mode == authNone {
		op = "IllustRecommendedNologin"
	}

	args := url.Values{}
	if opts != nil {
		setStr(args, "content_type", string(opts.ContentType))
		setStr(args, "filter", string(opts.Filter))
		setBool(args, "include_ranking_label", opts.IncludeRankingLabel)
		setStr(args, "max_bookmark_id_for_recommend", opts.MaxBookmarkIDForRecommend)
		setStr(args, "min_bookmark_id_for_recent_illust", opts.MinBookmarkIDForRecentIllust)
		setStr(args, "offset", opts.Offset)
		setBool(args, "include_ranking_illusts", opts.IncludeRankingIllusts)
		for _, id := range opts.Viewed {
			args.Add("viewed[]", id)
		}
		if op == "IllustRecommendedNologin" && len(opts.BookmarkIllustIDs) > 0 {
			args.Set("bookmark_illust_ids", strings.Join(opts.BookmarkIllustIDs, ","))
		}
		setStr(args, "include_privacy_policy", opts.IncludePrivacyPolicy)
	}
	var out json.RawMessage
	if err := c.call(ctx, op, args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IllustBookmarkDetail fetches bookmark state and tags for an illustration.
func (c *Client) IllustBookmarkDetail(ctx context.Context, illustID uint64) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "illust_id", illustID)
	var out json.RawMessage
	if err := c.call(ctx, "IllustBookmarkDetail", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IllustBookmarkAddOptions are the optional parameters of IllustBookmarkAdd.
type IllustBookmarkAddOptions struct {
	Restrict Restrict
	Tags     []string
}

// IllustBookmarkAdd bookmarks an illustration. Tags are joined with spaces,
// matching the form encoding the app uses.
func (c *Client) IllustBookmarkAdd(ctx context.Context, illustID uint64, opts *IllustBookmarkAddOptions) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "illust_id", illustID)
	if opts != nil {
		setStr(args, "restrict", string(opts.Restrict))
		if len(opts.Tags) > 0 {
			args.Set("tags[]", strings.Join(opts.Tags, " "))
		}
	}
	var out json.RawMessage
	if err := c.call(ctx, "IllustBookmarkAdd", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IllustBookmarkDelete removes a bookmark.
func (c *Client) IllustBookmarkDelete(ctx context.Context, illustID uint64) error {
	args := url.Values{}
	setUint(args, "illust_id", illustID)
	return c.call(ctx, "IllustBookmarkDelete", args, nil)
}

// UgoiraMetadata fetches frame timing and zip URLs for an ugoira.
func (c *Client) UgoiraMetadata(ctx context.Context, illustID uint64) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "illust_id", illustID)
	var out json.RawMessage
	if err := c.call(ctx, "UgoiraMetadata", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ShowcaseArticle fetches a pixivision showcase article; no login required.
func (c *Client) ShowcaseArticle(ctx context.Context, showcaseID uint64) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "article_id", showcaseID)
	var out json.RawMessage
	if err := c.call(ctx, "ShowcaseArticle", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}
