package pixiv

import "time"

// ProfileImageURLs holds the avatar URL (the API only serves medium size).
type ProfileImageURLs struct {
	Medium string `json:"medium"`
}

// User is the basic account info embedded in lists and details.
type User struct {
	ID                   uint64           `json:"id"`
	Name                 string           `json:"name"`
	Account              string           `json:"account"`
	ProfileImageURLs     ProfileImageURLs `json:"profile_image_urls"`
	Comment              string           `json:"comment,omitempty"`
	IsFollowed           *bool            `json:"is_followed,omitempty"`
	IsAccessBlockingUser *bool            `json:"is_access_blocking_user,omitempty"`
	IsAcceptRequest      *bool            `json:"is_accept_request,omitempty"`
}

// Profile is the extended profile section of a user detail response.
type Profile struct {
	Webpage                    *string `json:"webpage"`
	Gender                     string  `json:"gender"`
	Birth                      string  `json:"birth"`
	BirthDay                   string  `json:"birth_day"`
	BirthYear                  int64   `json:"birth_year"`
	Region                     string  `json:"region"`
	AddressID                  int64   `json:"address_id"`
	CountryCode                string  `json:"country_code"`
	Job                        string  `json:"job"`
	JobID                      int64   `json:"job_id"`
	TotalFollowUsers           int64   `json:"total_follow_users"`
	TotalMypixivUsers          int64   `json:"total_mypixiv_users"`
	TotalIllusts               int64   `json:"total_illusts"`
	TotalManga                 int64   `json:"total_manga"`
	TotalNovels                int64   `json:"total_novels"`
	TotalIllustBookmarksPublic int64   `json:"total_illust_bookmarks_public"`
	TotalIllustSeries          int64   `json:"total_illust_series"`
	TotalNovelSeries           int64   `json:"total_novel_series"`
	BackgroundImageURL         string  `json:"background_image_url"`
	TwitterAccount             string  `json:"twitter_account"`
	TwitterURL                 *string `json:"twitter_url"`
	PawooURL                   *string `json:"pawoo_url"`
	IsPremium                  bool    `json:"is_premium"`
	IsUsingCustomProfileImage  bool    `json:"is_using_custom_profile_image"`
}

// ProfilePublicity describes which profile fields are public.
type ProfilePublicity struct {
	Gender    string `json:"gender"`
	Region    string `json:"region"`
	BirthDay  string `json:"birth_day"`
	BirthYear string `json:"birth_year"`
	Job       string `json:"job"`
	Pawoo     bool   `json:"pawoo"`
}

// Workspace lists the hardware and tools a user reports using.
type Workspace struct {
	PC                string  `json:"pc"`
	Monitor           string  `json:"monitor"`
	Tool              string  `json:"tool"`
	Scanner           string  `json:"scanner"`
	Tablet            string  `json:"tablet"`
	Mouse             string  `json:"mouse"`
	Printer           string  `json:"printer"`
	Desktop           string  `json:"desktop"`
	Music             string  `json:"music"`
	Desk              string  `json:"desk"`
	Chair             string  `json:"chair"`
	Comment           string  `json:"comment"`
	WorkspaceImageURL *string `json:"workspace_image_url"`
}

// UserDetail is the /v1/user/detail response.
type UserDetail struct {
	User             User             `json:"user"`
	Profile          Profile          `json:"profile"`
	ProfilePublicity ProfilePublicity `json:"profile_publicity"`
	Workspace        Workspace        `json:"workspace"`
}

// ImageURLs holds the thumbnail sizes of an illustration.
type ImageURLs struct {
	SquareMedium string `json:"square_medium"`
	Medium       string `json:"medium"`
	Large        string `json:"large"`
}

// Tag is a tag on an illustration.
type Tag struct {
	Name           string  `json:"name"`
	TranslatedName *string `json:"translated_name"`
}

// Series identifies the series a work belongs to. The API sends {} instead of
// null for works without a series, which decodes to a zero-valued Series.
type Series struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

// MetaSinglePage carries the original image URL for single-page works.
type MetaSinglePage struct {
	OriginalImageURL string `json:"original_image_url"`
}

// MetaPage is one page of a multi-page work.
type MetaPage struct {
	ImageURLs ImageURLs `json:"image_urls"`
}

// Illust is an illustration as returned by list and detail endpoints.
type Illust struct {
	ID                    uint64    `json:"id"`
	Title                 string    `json:"title"`
	Type                  string    `json:"type"`
	ImageURLs             ImageURLs `json:"image_urls"`
	Caption               string    `json:"caption"`
	Restrict              int       `json:"restrict"`
	User                  User      `json:"user"`
	Tags                  []Tag     `json:"tags"`
	Tools                 []string  `json:"tools"`
	CreateDate            time.Time `json:"create_date"`
	PageCount             int       `json:"page_count"`
	Width                 int       `json:"width"`
	Height                int       `json:"height"`
	SanityLevel           int       `json:"sanity_level"`
	XRestrict             int       `json:"x_restrict"`
	Series                *Series   `json:"series"`
	MetaSinglePage        MetaSinglePage `json:"meta_single_page"`
	MetaPages             []MetaPage     `json:"meta_pages"`
	TotalView             int64     `json:"total_view"`
	TotalBookmarks        int64     `json:"total_bookmarks"`
	IsBookmarked          bool      `json:"is_bookmarked"`
	Visible               bool      `json:"visible"`
	IsMuted               bool      `json:"is_muted"`
	IllustAIType          int       `json:"illust_ai_type"`
	IllustBookStyle       int       `json:"illust_book_style"`
	TotalComments         int       `json:"total_comments,omitempty"`
	RestrictionAttributes []string  `json:"restriction_attributes,omitempty"`
}

// IllustDetail is the /v1/illust/detail response.
type IllustDetail struct {
	Illust Illust `json:"illust"`
}

// NovelTag is a tag on a novel.
type NovelTag struct {
	Name                string  `json:"name"`
	TranslatedName      *string `json:"translated_name"`
	AddedByUploadedUser bool    `json:"added_by_uploaded_user"`
}

// Novel is a novel as returned by list and detail endpoints.
type Novel struct {
	ID                   uint64     `json:"id"`
	Title                string     `json:"title"`
	Caption              string     `json:"caption"`
	Restrict             int        `json:"restrict"`
	XRestrict            int        `json:"x_restrict"`
	IsOriginal           bool       `json:"is_original"`
	ImageURLs            ImageURLs  `json:"image_urls"`
	CreateDate           string     `json:"create_date"`
	Tags                 []NovelTag `json:"tags"`
	PageCount            int        `json:"page_count"`
	TextLength           int64      `json:"text_length"`
	User                 User       `json:"user"`
	Series               *Series    `json:"series"`
	IsBookmarked         bool       `json:"is_bookmarked"`
	TotalBookmarks       int64      `json:"total_bookmarks"`
	TotalView            int64      `json:"total_view"`
	Visible              bool       `json:"visible"`
	TotalComments        int        `json:"total_comments"`
	IsMuted              bool       `json:"is_muted"`
	IsMypixivOnly        bool       `json:"is_mypixiv_only"`
	IsXRestricted        bool       `json:"is_x_restricted"`
	NovelAIType          int        `json:"novel_ai_type"`
	CommentAccessControl *int       `json:"comment_access_control,omitempty"`
}

// CommentUser is the author info embedded in a comment.
type CommentUser struct {
	ID               uint64           `json:"id"`
	Name             string           `json:"name"`
	Account          string           `json:"account"`
	ProfileImageURLs ProfileImageURLs `json:"profile_image_urls"`
}

// Comment is a single comment on an illust or novel. The API sends {} for a
// missing parent comment; HasParent distinguishes that from a real one.
type Comment struct {
	ID            uint64       `json:"id"`
	Comment       string       `json:"comment"`
	Date          string       `json:"date"`
	User          *CommentUser `json:"user"`
	ParentComment *Comment     `json:"parent_comment,omitempty"`
}

// HasParent reports whether the comment is a reply.
func (c *Comment) HasParent() bool {
	return c.ParentComment != nil && c.ParentComment.ID != 0
}

// UserPreview is a user plus sample works, as seen in following/follower lists.
type UserPreview struct {
	User    User     `json:"user"`
	Illusts []Illust `json:"illusts"`
	Novels  []Novel  `json:"novels"`
	IsMuted bool     `json:"is_muted"`
}

// NovelRating holds the counters the webview reports for a novel.
type NovelRating struct {
	Like     int64 `json:"like"`
	Bookmark int64 `json:"bookmark"`
	View     int64 `json:"view"`
}

// NovelNavigationInfo points to the previous or next entry in a series.
type NovelNavigationInfo struct {
	ID              uint64  `json:"id"`
	Viewable        bool    `json:"viewable"`
	ContentOrder    string  `json:"contentOrder"`
	Title           string  `json:"title"`
	CoverURL        string  `json:"coverUrl"`
	ViewableMessage *string `json:"viewableMessage"`
}

// SeriesNavigation carries the series neighbors of a webview novel.
type SeriesNavigation struct {
	NextNovel *NovelNavigationInfo `json:"nextNovel"`
	PrevNovel *NovelNavigationInfo `json:"prevNovel"`
}

// WebviewNovel is the payload embedded in the novel webview HTML. Field names
// are camelCase there, unlike the snake_case app API.
type WebviewNovel struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	SeriesID         *string           `json:"seriesId"`
	SeriesTitle      *string           `json:"seriesTitle"`
	SeriesIsWatched  *bool             `json:"seriesIsWatched"`
	UserID           string            `json:"userId"`
	CoverURL         string            `json:"coverUrl"`
	Tags             []string          `json:"tags"`
	Caption          string            `json:"caption"`
	CDate            string            `json:"cdate"`
	Rating           NovelRating       `json:"rating"`
	Text             string            `json:"text"`
	Illusts          []any             `json:"illusts"`
	Images           map[string]any    `json:"images"`
	SeriesNavigation *SeriesNavigation `json:"seriesNavigation"`
	Glossary         []any             `json:"glossaryItems"`
	AIType           int               `json:"aiType"`
	IsOriginal       bool              `json:"isOriginal"`
}

// AuthResponse is the OAuth token endpoint response.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}

// ----------------------------------------------------------------------------
// Paged envelopes
// ----------------------------------------------------------------------------

// UserIllusts is the paged /v1/user/illusts response.
type UserIllusts struct {
	User    User     `json:"user"`
	Illusts []Illust `json:"illusts"`
	NextURL string   `json:"next_url,omitempty"`
}

// UserBookmarksIllust is the paged /v1/user/bookmarks/illust response.
type UserBookmarksIllust struct {
	Illusts []Illust `json:"illusts"`
	NextURL string   `json:"next_url,omitempty"`
}

// UserBookmarksNovel is the paged /v1/user/bookmarks/novel response.
type UserBookmarksNovel struct {
	Novels  []Novel `json:"novels"`
	NextURL string  `json:"next_url,omitempty"`
}

// SearchIllusts is the paged /v1/search/illust response.
type SearchIllusts struct {
	Illusts         []Illust `json:"illusts"`
	NextURL         string   `json:"next_url,omitempty"`
	SearchSpanLimit int      `json:"search_span_limit"`
	ShowAI          bool     `json:"show_ai"`
}

// SearchNovels is the paged /v1/search/novel response.
type SearchNovels struct {
	Novels          []Novel `json:"novels"`
	NextURL         string  `json:"next_url,omitempty"`
	SearchSpanLimit int     `json:"search_span_limit"`
	ShowAI          bool    `json:"show_ai"`
}

// UserFollowing is the paged /v1/user/following response.
type UserFollowing struct {
	UserPreviews []UserPreview `json:"user_previews"`
	NextURL      string        `json:"next_url,omitempty"`
}

// UserNovels is the paged /v1/user/novels response.
type UserNovels struct {
	User    User    `json:"user"`
	Novels  []Novel `json:"novels"`
	NextURL string  `json:"next_url,omitempty"`
}

// NovelComments is the paged /v1/novel/comments response.
type NovelComments struct {
	TotalComments        int       `json:"total_comments"`
	Comments             []Comment `json:"comments"`
	NextURL              string    `json:"next_url,omitempty"`
	CommentAccessControl int       `json:"comment_access_control"`
}

func (r *UserIllusts) PageItems() []Illust { return r.Illusts }

func (r *UserIllusts) NextPage() (string, bool) { return r.NextURL, r.NextURL != "" }

func (r *UserBookmarksIllust) PageItems() []Illust { return r.Illusts }

func (r *UserBookmarksIllust) NextPage() (string, bool) { return r.NextURL, r.NextURL != "" }

func (r *UserBookmarksNovel) PageItems() []Novel { return r.Novels }

func (r *UserBookmarksNovel) NextPage() (string, bool) { return r.NextURL, r.NextURL != "" }

func (r *SearchIllusts) PageItems() []Illust { return r.Illusts }

func (r *SearchIllusts) NextPage() (string, bool) { return r.NextURL, r.NextURL != "" }

func (r *SearchNovels) PageItems() []Novel { return r.Novels }

func (r *SearchNovels) NextPage() (string, bool) { return r.NextURL, r.NextURL != "" }

func (r *UserFollowing) PageItems() []UserPreview { return r.UserPreviews }

func (r *UserFollowing) NextPage() (string, bool) { return r.NextURL, r.NextURL != "" }

func (r *UserNovels) PageItems() []Novel { return r.Novels }

func (r *UserNovels) NextPage() (string, bool) { return r.NextURL, r.NextURL != "" }

func (r *NovelComments) PageItems() []Comment { return r.Comments }

func (r *NovelComments) NextPage() (string, bool) { return r.NextURL, r.NextURL != "" }
