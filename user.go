package pixiv

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

func setStr(v url.Values, key, s string) {
	if s != "" {
		v.Set(key, s)
	}
}

func setUint(v url.Values, key string, n uint64) {
	v.Set(key, strconv.FormatUint(n, 10))
}

func setBool(v url.Values, key string, b bool) {
	if b {
		v.Set(key, "true")
	}
}

// UserDetailOptions are the optional parameters of UserDetail.
type UserDetailOptions struct {
	Filter Filter
}

// UserDetail fetches a user's profile, publicity settings, and workspace.
func (c *Client) UserDetail(ctx context.Context, userID uint64, opts *UserDetailOptions) (*UserDetail, error) {
	args := url.Values{}
	setUint(args, "user_id", userID)
	if opts != nil {
		setStr(args, "filter", string(opts.Filter))
	}
	var out UserDetail
	if err := c.call(ctx, "UserDetail", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserIllustsOptions are the optional parameters of UserIllusts.
type UserIllustsOptions struct {
	Type   IllustType
	Filter Filter
	Offset string
}

// UserIllusts lists a user's illustrations, paged.
func (c *Client) UserIllusts(ctx context.Context, userID uint64, opts *UserIllustsOptions) (*UserIllusts, error) {
	args := url.Values{}
	setUint(args, "user_id", userID)
	if opts != nil {
		setStr(args, "type", string(opts.Type))
		setStr(args, "filter", string(opts.Filter))
		setStr(args, "offset", opts.Offset)
	}
	var out UserIllusts
	if err := c.call(ctx, "UserIllusts", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserBookmarksOptions are the optional parameters of the bookmark listings.
type UserBookmarksOptions struct {
	Restrict      Restrict
	Filter        Filter
	MaxBookmarkID string
	Tag           string
}

func (o *UserBookmarksOptions) apply(args url.Values) {
	if o == nil {
		return
	}
	setStr(args, "restrict", string(o.Restrict))
	setStr(args, "filter", string(o.Filter))
	setStr(args, "max_bookmark_id", o.MaxBookmarkID)
	setStr(args, "tag", o.Tag)
}

// UserBookmarksIllust lists a user's bookmarked illustrations, paged.
func (c *Client) UserBookmarksIllust(ctx context.Context, userID uint64, opts *UserBookmarksOptions) (*UserBookmarksIllust, error) {
	args := url.Values{}
	setUint(args, "user_id", userID)
	opts.apply(args)
	var out UserBookmarksIllust
	if err := c.call(ctx, "UserBookmarksIllust", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserBookmarksNovel lists a user's bookmarked novels, paged.
func (c *Client) UserBookmarksNovel(ctx context.Context, userID uint64, opts *UserBookmarksOptions) (*UserBookmarksNovel, error) {
	args := url.Values{}
	setUint(args, "user_id", userID)
	opts.apply(args)
	var out UserBookmarksNovel
	if err := c.call(ctx, "UserBookmarksNovel", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOptions are the optional parameters shared by plain user listings.
type ListOptions struct {
	Filter Filter
	Offset string
}

func (o *ListOptions) apply(args url.Values) {
	if o == nil {
		return
	}
	setStr(args, "filter", string(o.Filter))
	setStr(args, "offset", o.Offset)
}

// UserRelated lists users related to a seed user.
func (c *Client) UserRelated(ctx context.Context, seedUserID uint64, opts *ListOptions) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "seed_user_id", seedUserID)
	opts.apply(args)
	var out json.RawMessage
	if err := c.call(ctx, "UserRelated", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserRecommended lists users recommended to the authenticated user.
func (c *Client) UserRecommended(ctx context.Context, opts *ListOptions) (json.RawMessage, error) {
	args := url.Values{}
	opts.apply(args)
	var out json.RawMessage
	if err := c.call(ctx, "UserRecommended", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserFollowingOptions are the optional parameters of UserFollowing.
type UserFollowingOptions struct {
	Restrict Restrict
	Offset   string
}

// UserFollowing lists the users a user follows, paged.
func (c *Client) UserFollowing(ctx context.Context, userID uint64, opts *UserFollowingOptions) (*UserFollowing, error) {
	args := url.Values{}
	setUint(args, "user_id", userID)
	if opts != nil {
		setStr(args, "restrict", string(opts.Restrict))
		setStr(args, "offset", opts.Offset)
	}
	var out UserFollowing
	if err := c.call(ctx, "UserFollowing", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserFollower lists a user's followers.
func (c *Client) UserFollower(ctx context.Context, userID uint64, opts *ListOptions) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "user_id", userID)
	opts.apply(args)
	var out json.RawMessage
	if err := c.call(ctx, "UserFollower", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserMypixiv lists a user's MyPixiv friends.
func (c *Client) UserMypixiv(ctx context.Context, userID uint64, offset string) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "user_id", userID)
	setStr(args, "offset", offset)
	var out json.RawMessage
	if err := c.call(ctx, "UserMypixiv", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserList fetches the authenticated user's blocklist.
func (c *Client) UserList(ctx context.Context, userID uint64, opts *ListOptions) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "user_id", userID)
	opts.apply(args)
	var out json.RawMessage
	if err := c.call(ctx, "UserList", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserBookmarkTagsIllust lists the tags a user has assigned to bookmarks.
func (c *Client) UserBookmarkTagsIllust(ctx context.Context, userID uint64, restrict Restrict, offset string) (json.RawMessage, error) {
	args := url.Values{}
	setUint(args, "user_id", userID)
	setStr(args, "restrict", string(restrict))
	setStr(args, "offset", offset)
	var out json.RawMessage
	if err := c.call(ctx, "UserBookmarkTagsIllust", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserNovelsOptions are the optional parameters of UserNovels.
type UserNovelsOptions struct {
	Filter Filter
	Offset string
}

// UserNovels lists a user's novels, paged.
func (c *Client) UserNovels(ctx context.Context, userID uint64, opts *UserNovelsOptions) (*UserNovels, error) {
	args := url.Values{}
	setUint(args, "user_id", userID)
	if opts != nil {
		setStr(args, "filter", string(opts.Filter))
		setStr(args, "offset", opts.Offset)
	}
	var out UserNovels
	if err := c.call(ctx, "UserNovels", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserFollowAdd follows a user. Pass RestrictPrivate to follow privately.
func (c *Client) UserFollowAdd(ctx context.Context, userID uint64, restrict Restrict) error {
	args := url.Values{}
	setUint(args, "user_id", userID)
	setStr(args, "restrict", string(restrict))
	return c.call(ctx, "UserFollowAdd", args, nil)
}

// UserFollowDelete unfollows a user.
func (c *Client) UserFollowDelete(ctx context.Context, userID uint64) error {
	args := url.Values{}
	setUint(args, "user_id", userID)
	return c.call(ctx, "UserFollowDelete", args, nil)
}

// UserEditAIShowSettings toggles whether AI-generated works are shown.
func (c *Client) UserEditAIShowSettings(ctx context.Context, show bool) error {
	args := url.Values{}
	args.Set("show_ai", strconv.FormatBool(show))
	return c.call(ctx, "UserAIShowSettingsEdit", args, nil)
}
