package pixiv

// ParamIn says where a parameter is placed in the request.
type ParamIn int

const (
	// InPath substitutes a {name} placeholder in the path template.
	InPath ParamIn = iota
	// InQuery appends the parameter to the query string.
	InQuery
	// InForm adds the parameter to a form-encoded request body.
	InForm
)

// Param declares one parameter of an endpoint.
type Param struct {
	Name     string
	In       ParamIn
	Required bool
	Default  string // applied when the caller does not supply the parameter
}

// Endpoint declares one API operation: verb, path template, auth requirement,
// and parameter layout. The request executor is generic over all entries;
// adding an endpoint needs no new executor logic.
type Endpoint struct {
	Method  string
	Path    string // relative to the client base URL, or an absolute URL
	Auth    bool   // attach a bearer token (skipped in no-auth mode)
	Params  []Param
	Headers map[string]string // per-operation header overrides
}

func req(name string) Param        { return Param{Name: name, In: InQuery, Required: true} }
func opt(name string) Param        { return Param{Name: name, In: InQuery} }
func def(name, value string) Param { return Param{Name: name, In: InQuery, Default: value} }
func formReq(name string) Param    { return Param{Name: name, In: InForm, Required: true} }
func formOpt(name string) Param    { return Param{Name: name, In: InForm} }
func formDef(name, v string) Param { return Param{Name: name, In: InForm, Default: v} }

// Endpoints is the static catalog of App-API operations.
var Endpoints = map[string]Endpoint{
	"UserDetail": {Method: "GET", Path: "/v1/user/detail", Auth: true, Params: []Param{
		req("user_id"), def("filter", "for_ios"),
	}},
	"UserIllusts": {Method: "GET", Path: "/v1/user/illusts", Auth: true, Params: []Param{
		req("user_id"), def("type", "illust"), opt("filter"), opt("offset"),
	}},
	"UserBookmarksIllust": {Method: "GET", Path: "/v1/user/bookmarks/illust", Auth: true, Params: []Param{
		req("user_id"), def("restrict", "public"), def("filter", "for_ios"),
		opt("max_bookmark_id"), opt("tag"),
	}},
	"UserBookmarksNovel": {Method: "GET", Path: "/v1/user/bookmarks/novel", Auth: true, Params: []Param{
		req("user_id"), def("restrict", "public"), def("filter", "for_ios"),
		opt("max_bookmark_id"), opt("tag"),
	}},
	"UserRelated": {Method: "GET", Path: "/v1/user/related", Auth: true, Params: []Param{
		req("seed_user_id"), def("filter", "for_ios"), def("offset", "0"),
	}},
	"UserRecommended": {Method: "GET", Path: "/v1/user/recommended", Auth: true, Params: []Param{
		def("filter", "for_ios"), opt("offset"),
	}},
	"IllustFollow": {Method: "GET", Path: "/v2/illust/follow", Auth: true, Params: []Param{
		def("restrict", "public"), opt("offset"),
	}},
	"IllustDetail": {Method: "GET", Path: "/v1/illust/detail", Auth: true, Params: []Param{
		req("illust_id"),
	}},
	"IllustComments": {Method: "GET", Path: "/v3/illust/comments", Auth: true, Params: []Param{
		req("illust_id"), opt("offset"), opt("include_total_comments"),
	}},
	"IllustRanking": {Method: "GET", Path: "/v1/illust/ranking", Auth: true, Params: []Param{
		def("mode", "day"), def("filter", "for_ios"), opt("date"), opt("offset"),
	}},
	"TrendingTagsIllust": {Method: "GET", Path: "/v1/trending-tags/illust", Auth: true, Params: []Param{
		def("filter", "for_ios"),
	}},
	"SearchIllust": {Method: "GET", Path: "/v1/search/illust", Auth: true, Params: []Param{
		req("word"), def("search_target", "partial_match_for_tags"), def("sort", "date_desc"),
		opt("duration"), opt("start_date"), opt("end_date"), def("filter", "for_ios"),
		opt("search_ai_type"), opt("offset"),
	}},
	"SearchNovel": {Method: "GET", Path: "/v1/search/novel", Auth: true, Params: []Param{
		req("word"), def("search_target", "partial_match_for_tags"), def("sort", "date_desc"),
		def("merge_plain_keyword_results", "true"), def("include_translated_tag_results", "true"),
		opt("start_date"), opt("end_date"), opt("filter"), opt("search_ai_type"), opt("offset"),
	}},
	"SearchUser": {Method: "GET", Path: "/v1/search/user", Auth: true, Params: []Param{
		req("word"), def("sort", "date_desc"), opt("duration"), def("filter", "for_ios"), opt("offset"),
	}},
	"IllustBookmarkDetail": {Method: "GET", Path: "/v2/illust/bookmark/detail", Auth: true, Params: []Param{
		req("illust_id"),
	}},
	"UserBookmarkTagsIllust": {Method: "GET", Path: "/v1/user/bookmark-tags/illust", Auth: true, Params: []Param{
		req("user_id"), def("restrict", "public"), opt("offset"),
	}},
	"UserFollowing": {Method: "GET", Path: "/v1/user/following", Auth: true, Params: []Param{
		req("user_id"), def("restrict", "public"), opt("offset"),
	}},
	"UserFollower": {Method: "GET", Path: "/v1/user/follower", Auth: true, Params: []Param{
		req("user_id"), def("filter", "for_ios"), opt("offset"),
	}},
	"UserMypixiv": {Method: "GET", Path: "/v1/user/mypixiv", Auth: true, Params: []Param{
		req("user_id"), opt("offset"),
	}},
	"UserList": {Method: "GET", Path: "/v2/user/list", Auth: true, Params: []Param{
		req("user_id"), def("filter", "for_ios"), opt("offset"),
	}},
	"UgoiraMetadata": {Method: "GET", Path: "/v1/ugoira/metadata", Auth: true, Params: []Param{
		req("illust_id"),
	}},
	"UserNovels": {Method: "GET", Path: "/v1/user/novels", Auth: true, Params: []Param{
		req("user_id"), def("filter", "for_ios"), opt("offset"),
	}},
	"NovelSeries": {Method: "GET", Path: "/v2/novel/series", Auth: true, Params: []Param{
		req("series_id"), def("filter", "for_ios"), opt("last_order"),
	}},
	"NovelDetail": {Method: "GET", Path: "/v2/novel/detail", Auth: true, Params: []Param{
		req("novel_id"),
	}},
	"NovelComments": {Method: "GET", Path: "/v1/novel/comments", Auth: true, Params: []Param{
		req("novel_id"), opt("offset"), opt("include_total_comments"),
	}},
	"NovelNew": {Method: "GET", Path: "/v1/novel/new", Auth: true, Params: []Param{
		def("filter", "for_ios"), opt("max_novel_id"),
	}},
	"IllustNew": {Method: "GET", Path: "/v1/illust/new", Auth: true, Params: []Param{
		def("content_type", "illust"), def("filter", "for_ios"), opt("max_illust_id"),
	}},
	"NovelFollow": {Method: "GET", Path: "/v1/novel/follow", Auth: true, Params: []Param{
		def("restrict", "public"), opt("offset"),
	}},
	"NovelRecommended": {Method: "GET", Path: "/v1/novel/recommended", Auth: true, Params: []Param{
		def("include_ranking_label", "true"), def("filter", "for_ios"), opt("offset"),
		opt("include_ranking_novels"), opt("already_recommended"),
		opt("max_bookmark_id_for_recommend"), opt("include_privacy_policy"),
	}},
	"IllustRelated": {Method: "GET", Path: "/v2/illust/related", Auth: true, Params: []Param{
		req("illust_id"), def("filter", "for_ios"), opt("seed_illust_ids[]"),
		opt("offset"), opt("viewed[]"),
	}},
	"IllustRecommended": {Method: "GET", Path: "/v1/illust/recommended", Auth: true, Params: []Param{
		def("content_type", "illust"), def("include_ranking_label", "true"), def("filter", "for_ios"),
		opt("max_bookmark_id_for_recommend"), opt("min_bookmark_id_for_recent_illust"),
		opt("offset"), opt("include_ranking_illusts"), opt("viewed[]"), opt("include_privacy_policy"),
	}},
	// Same operation without login; the server exposes it on a separate path.
	"IllustRecommendedNologin": {Method: "GET", Path: "/v1/illust/recommended-nologin", Auth: false, Params: []Param{
		def("content_type", "illust"), def("include_ranking_label", "true"), def("filter", "for_ios"),
		opt("max_bookmark_id_for_recommend"), opt("min_bookmark_id_for_recent_illust"),
		opt("offset"), opt("include_ranking_illusts"), opt("viewed[]"),
		opt("bookmark_illust_ids"), opt("include_privacy_policy"),
	}},
	"WebviewNovel": {Method: "GET", Path: "/webview/v2/novel", Auth: true, Params: []Param{
		req("id"), def("viewer_version", "20221031_ai"),
	}},
	// Served from the www host and only accepts browser user agents.
	"ShowcaseArticle": {Method: "GET", Path: "https://www.pixiv.net/ajax/showcase/article", Auth: false, Params: []Param{
		req("article_id"),
	}, Headers: map[string]string{
		"User-Agent": "Mozilla/5.0 (Windows NT 6.1; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/63.0.3239.132 Safari/537.36",
		"Referer":    "https://www.pixiv.net",
	}},

	"IllustBookmarkAdd": {Method: "POST", Path: "/v2/illust/bookmark/add", Auth: true, Params: []Param{
		formReq("illust_id"), formDef("restrict", "public"), formOpt("tags[]"),
	}},
	"IllustBookmarkDelete": {Method: "POST", Path: "/v1/illust/bookmark/delete", Auth: true, Params: []Param{
		formReq("illust_id"),
	}},
	"UserFollowAdd": {Method: "POST", Path: "/v1/user/follow/add", Auth: true, Params: []Param{
		formReq("user_id"), formDef("restrict", "public"),
	}},
	"UserFollowDelete": {Method: "POST", Path: "/v1/user/follow/delete", Auth: true, Params: []Param{
		formReq("user_id"),
	}},
	"UserAIShowSettingsEdit": {Method: "POST", Path: "/v1/user/ai-show-settings/edit", Auth: true, Params: []Param{
		formReq("show_ai"),
	}},
}
