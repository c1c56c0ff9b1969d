// Package constants holds the enumerated values the Google Trends web API
// accepts. The API is undocumented; these lists are reverse-engineered from
// the requests the trends.google.com frontend issues and may drift upstream.
package constants

// Host languages (`hl` query parameter).
const (
	LANG_ARABIC              = "ar"
	LANG_CHINESE_SIMPLIFIED  = "zh-CN"
	LANG_CHINESE_TRADITIONAL = "zh-TW"
	LANG_CZECH               = "cs"
	LANG_DANISH              = "da"
	LANG_DUTCH               = "nl"
	LANG_ENGLISH_UK          = "en-GB"
	LANG_ENGLISH_US          = "en-US"
	LANG_FINNISH             = "fi"
	LANG_FRENCH              = "fr"
	LANG_GERMAN              = "de"
	LANG_GREEK               = "el"
	LANG_HEBREW              = "iw"
	LANG_HINDI               = "hi"
	LANG_HUNGARIAN           = "hu"
	LANG_INDONESIAN          = "id"
	LANG_ITALIAN             = "it"
	LANG_JAPANESE            = "ja"
	LANG_KOREAN              = "ko"
	LANG_NORWEGIAN           = "no"
	LANG_POLISH              = "pl"
	LANG_PORTUGUESE_BRAZIL   = "pt-BR"
	LANG_PORTUGUESE_PORTUGAL = "pt-PT"
	LANG_RUSSIAN             = "ru"
	LANG_SPANISH             = "es"
	LANG_SWEDISH             = "sv"
	LANG_THAI                = "th"
	LANG_TURKISH             = "tr"
	LANG_UKRAINIAN           = "uk"
	LANG_VIETNAMESE          = "vi"
)

var LangValues = []string{
	LANG_ARABIC, LANG_CHINESE_SIMPLIFIED, LANG_CHINESE_TRADITIONAL, LANG_CZECH,
	LANG_DANISH, LANG_DUTCH, LANG_ENGLISH_UK, LANG_ENGLISH_US, LANG_FINNISH,
	LANG_FRENCH, LANG_GERMAN, LANG_GREEK, LANG_HEBREW, LANG_HINDI,
	LANG_HUNGARIAN, LANG_INDONESIAN, LANG_ITALIAN, LANG_JAPANESE, LANG_KOREAN,
	LANG_NORWEGIAN, LANG_POLISH, LANG_PORTUGUESE_BRAZIL, LANG_PORTUGUESE_PORTUGAL,
	LANG_RUSSIAN, LANG_SPANISH, LANG_SWEDISH, LANG_THAI, LANG_TURKISH,
	LANG_UKRAINIAN, LANG_VIETNAMESE,
}

// Top-level search categories (`category` field of the explore request).
const (
	CATEGORY_ALL                       = 0
	CATEGORY_ARTS_AND_ENTERTAINMENT    = 3
	CATEGORY_AUTOS_AND_VEHICLES        = 47
	CATEGORY_BEAUTY_AND_FITNESS        = 44
	CATEGORY_BOOKS_AND_LITERATURE      = 22
	CATEGORY_BUSINESS_AND_INDUSTRIAL   = 12
	CATEGORY_COMPUTERS_AND_ELECTRONICS = 5
	CATEGORY_FINANCE                   = 7
	CATEGORY_FOOD_AND_DRINK            = 71
	CATEGORY_GAMES                     = 8
	CATEGORY_HEALTH                    = 45
	CATEGORY_HOBBIES_AND_LEISURE       = 65
	CATEGORY_HOME_AND_GARDEN           = 11
	CATEGORY_INTERNET_AND_TELECOM      = 13
	CATEGORY_JOBS_AND_EDUCATION        = 958
	CATEGORY_LAW_AND_GOVERNMENT        = 19
	CATEGORY_NEWS                      = 16
	CATEGORY_ONLINE_COMMUNITIES        = 299
	CATEGORY_PEOPLE_AND_SOCIETY        = 14
	CATEGORY_PETS_AND_ANIMALS          = 66
	CATEGORY_REAL_ESTATE               = 29
	CATEGORY_REFERENCE                 = 533
	CATEGORY_SCIENCE                   = 174
	CATEGORY_SHOPPING                  = 18
	CATEGORY_SPORTS                    = 20
	CATEGORY_TRAVEL                    = 67
)

var CategoryValues = []int{
	CATEGORY_ALL, CATEGORY_ARTS_AND_ENTERTAINMENT, CATEGORY_AUTOS_AND_VEHICLES,
	CATEGORY_BEAUTY_AND_FITNESS, CATEGORY_BOOKS_AND_LITERATURE,
	CATEGORY_BUSINESS_AND_INDUSTRIAL, CATEGORY_COMPUTERS_AND_ELECTRONICS,
	CATEGORY_FINANCE, CATEGORY_FOOD_AND_DRINK, CATEGORY_GAMES, CATEGORY_HEALTH,
	CATEGORY_HOBBIES_AND_LEISURE, CATEGORY_HOME_AND_GARDEN,
	CATEGORY_INTERNET_AND_TELECOM, CATEGORY_JOBS_AND_EDUCATION,
	CATEGORY_LAW_AND_GOVERNMENT, CATEGORY_NEWS, CATEGORY_ONLINE_COMMUNITIES,
	CATEGORY_PEOPLE_AND_SOCIETY, CATEGORY_PETS_AND_ANIMALS, CATEGORY_REAL_ESTATE,
	CATEGORY_REFERENCE, CATEGORY_SCIENCE, CATEGORY_SHOPPING, CATEGORY_SPORTS,
	CATEGORY_TRAVEL,
}

// Search properties (`property` field). Web search is the empty string on the
// wire; "froogle" is the internal name Google still uses for Shopping.
const (
	PROPERTY_WEB      = ""
	PROPERTY_IMAGES   = "images"
	PROPERTY_NEWS     = "news"
	PROPERTY_SHOPPING = "froogle"
	PROPERTY_YOUTUBE  = "youtube"
)

var PropertyValues = []string{
	PROPERTY_WEB, PROPERTY_IMAGES, PROPERTY_NEWS, PROPERTY_SHOPPING,
	PROPERTY_YOUTUBE,
}

// Predefined time periods (`time` field of a comparison item). Custom ranges
// are expressed as "YYYY-MM-DD YYYY-MM-DD" and built separately.
const (
	PERIOD_PAST_HOUR       = "now 1-H"
	PERIOD_PAST_4_HOURS    = "now 4-H"
	PERIOD_PAST_DAY        = "now 1-d"
	PERIOD_PAST_7_DAYS     = "now 7-d"
	PERIOD_PAST_30_DAYS    = "today 1-m"
	PERIOD_PAST_90_DAYS    = "today 3-m"
	PERIOD_PAST_12_MONTHS  = "today 12-m"
	PERIOD_PAST_5_YEARS    = "today 5-y"
	PERIOD_2004_TO_PRESENT = "all"
)

var PeriodValues = []string{
	PERIOD_PAST_HOUR, PERIOD_PAST_4_HOURS, PERIOD_PAST_DAY, PERIOD_PAST_7_DAYS,
	PERIOD_PAST_30_DAYS, PERIOD_PAST_90_DAYS, PERIOD_PAST_12_MONTHS,
	PERIOD_PAST_5_YEARS, PERIOD_2004_TO_PRESENT,
}

// Geographic resolutions (`resolution` field of a comparedgeo widget request).
// COUNTRY is only meaningful for worldwide queries; DMA is US-only.
const (
	FILTER_COUNTRY = "COUNTRY"
	FILTER_REGION  = "REGION"
	FILTER_DMA     = "DMA"
	FILTER_CITY    = "CITY"
)

var FilterValues = []string{
	FILTER_COUNTRY, FILTER_REGION, FILTER_DMA, FILTER_CITY,
}
