package pixiv

import (
	"context"
	"iter"
	"net/http"
)

// Paged is implemented by paged response envelopes: a slice of items plus an
// opaque next_url locator. NextPage reports false when the listing is
// exhausted.
type Paged[T any] interface {
	PageItems() []T
	NextPage() (string, bool)
}

// FetchNext fetches the page behind a next_url locator into a fresh envelope
// of type E. The locator is opaque; the server embeds all parameters in it.
func FetchNext[E any](ctx context.Context, c *Client, nextURL string) (*E, error) {
	out := new(E)
	if err := c.doRequest(ctx, http.MethodGet, nextURL, nil, nil, nil, true, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Follow turns a paged operation into a lazy sequence of items. first fetches
// page one; subsequent pages are fetched by following each envelope's
// next_url until it is absent. A fetch error is yielded once (with a zero
// item) and ends the sequence. Breaking out of the loop early has no side
// effects; the sequence is restarted only by calling Follow again.
func Follow[T, E any, P interface {
	Paged[T]
	*E
}](ctx context.Context, c *Client, first func(context.Context) (P, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		page, err := first(ctx)
		for {
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range page.PageItems() {
				if !yield(item, nil) {
					return
				}
			}
			next, ok := page.NextPage()
			if !ok {
				return
			}
			var e *E
			e, err = FetchNext[E](ctx, c, next)
			page = P(e)
		}
	}
}

// UserIllustsAll iterates over every illust a user has posted.
func (c *Client) UserIllustsAll(ctx context.Context, userID uint64, opts *UserIllustsOptions) iter.Seq2[Illust, error] {
	return Follow[Illust, UserIllusts](ctx, c, func(ctx context.Context) (*UserIllusts, error) {
		return c.UserIllusts(ctx, userID, opts)
	})
}

// UserBookmarksIllustAll iterates over every bookmarked illust of a user.
func (c *Client) UserBookmarksIllustAll(ctx context.Context, userID uint64, opts *UserBookmarksOptions) iter.Seq2[Illust, error] {
	return Follow[Illust, UserBookmarksIllust](ctx, c, func(ctx context.Context) (*UserBookmarksIllust, error) {
		return c.UserBookmarksIllust(ctx, userID, opts)
	})
}

// UserNovelsAll iterates over every novel a user has posted.
func (c *Client) UserNovelsAll(ctx context.Context, userID uint64, opts *UserNovelsOptions) iter.Seq2[Novel, error] {
	return Follow[Novel, UserNovels](ctx, c, func(ctx context.Context) (*UserNovels, error) {
		return c.UserNovels(ctx, userID, opts)
	})
}

// UserFollowingAll iterates over every user the given user follows.
func (c *Client) UserFollowingAll(ctx context.Context, userID uint64, opts *UserFollowingOptions) iter.Seq2[UserPreview, error] {
	return Follow[UserPreview, UserFollowing](ctx, c, func(ctx context.Context) (*UserFollowing, error) {
		return c.UserFollowing(ctx, userID, opts)
	})
}

// SearchIllustAll iterates over every illust matching a search.
func (c *Client) SearchIllustAll(ctx context.Context, word string, opts *SearchIllustOptions) iter.Seq2[Illust, error] {
	return Follow[Illust, SearchIllusts](ctx, c, func(ctx context.Context) (*SearchIllusts, error) {
		return c.SearchIllust(ctx, word, opts)
	})
}

// SearchNovelAll iterates over every novel matching a search.
func (c *Client) SearchNovelAll(ctx context.Context, word string, opts *SearchNovelOptions) iter.Seq2[Novel, error] {
	return Follow[Novel, SearchNovels](ctx, c, func(ctx context.Context) (*SearchNovels, error) {
		return c.SearchNovel(ctx, word, opts)
	})
}

// NovelCommentsAll iterates over every comment on a novel.
func (c *Client) NovelCommentsAll(ctx context.Context, novelID uint64, opts *NovelCommentsOptions) iter.Seq2[Comment, error] {
	return Follow[Comment, NovelComments](ctx, c, func(ctx context.Context) (*NovelComments, error) {
		return c.NovelComments(ctx, novelID, opts)
	})
}
