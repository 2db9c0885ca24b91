package pixiv

// Filter selects the client flavor the API tailors responses for.
type Filter string

const FilterForIOS Filter = "for_ios"

// IllustType distinguishes illustrations from manga.
type IllustType string

const (
	IllustTypeIllust IllustType = "illust"
	IllustTypeManga  IllustType = "manga"
)

// Restrict controls visibility of bookmarks and follows.
type Restrict string

const (
	RestrictPublic  Restrict = "public"
	RestrictPrivate Restrict = "private"
)

// RankingMode selects a ranking board.
type RankingMode string

const (
	RankingDay           RankingMode = "day"
	RankingWeek          RankingMode = "week"
	RankingMonth         RankingMode = "month"
	RankingDayMale       RankingMode = "day_male"
	RankingDayFemale     RankingMode = "day_female"
	RankingWeekOriginal  RankingMode = "week_original"
	RankingWeekRookie    RankingMode = "week_rookie"
	RankingDayR18        RankingMode = "day_r18"
	RankingDayMaleR18    RankingMode = "day_male_r18"
	RankingDayFemaleR18  RankingMode = "day_female_r18"
	RankingWeekR18       RankingMode = "week_r18"
	RankingWeekR18Global RankingMode = "week_r18g"
)

// SearchTarget controls how the search word is matched.
type SearchTarget string

const (
	SearchPartialMatchForTags SearchTarget = "partial_match_for_tags"
	SearchExactMatchForTags   SearchTarget = "exact_match_for_tags"
	SearchTitleAndCaption     SearchTarget = "title_and_caption"
	SearchKeyword             SearchTarget = "keyword"
)

// Sort orders search and listing results.
type Sort string

const (
	SortDateDesc    Sort = "date_desc"
	SortDateAsc     Sort = "date_asc"
	SortPopularDesc Sort = "popular_desc"
	SortPopularAsc  Sort = "popular_asc"
)

// Duration restricts search results to a recent time window.
type Duration string

const (
	DurationLastDay   Duration = "last_day"
	DurationLastWeek  Duration = "last_week"
	DurationLastMonth Duration = "last_month"
)
