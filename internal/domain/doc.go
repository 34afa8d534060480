// Package domain models Korea Meteorological Administration (KMA) API Hub data.
//
// # Data Source
//
// All records originate from the KMA API Hub (https://apihub.kma.go.kr). Every
// product is served over HTTP GET with an authKey query parameter. Most
// products wrap their rows in a fixed JSON envelope:
//
//	{"response": {"header": {"resultCode": "00", "resultMsg": "NORMAL_SERVICE"},
//	              "body": {"dataType": "JSON", "items": {"item": [...]},
//	                       "pageNo": 1, "numOfRows": 10, "totalCount": 3}}}
//
// The envelope is unwrapped by the kma adapter; this package only holds the
// row types and the conventions needed to build requests.
//
// # KMA Data Conventions
//
// Time format:
//
//	Minute precision: YYYYMMDDHHmm, e.g. "202501050905" = 2025-01-05 09:05.
//	Day precision:    YYYYMMDD,     e.g. "20250105".
//	All upstream timestamps are Korea Standard Time (UTC+9), see [KST].
//	Fields are always zero padded. See [FormatDateTime] and [ParseDateTime].
//
// Station IDs:
//
//	"stn" is a numeric site identifier (108 = Seoul, 112 = Incheon,
//	133 = Daejeon, 159 = Busan, 184 = Jeju). 0 means all stations.
//	Upstream emits IDs as strings in some products and numbers in others,
//	so records use [ID].
//
// Numeric values:
//
//	Measurements arrive as JSON numbers, numeric strings, or empty strings for
//	unmeasured values. Records use [Number], which accepts all three and
//	records whether a value was reported at all.
//	Missing observations are often reported as -99 or -99.9; these are passed
//	through unchanged.
//
// QC flags:
//
//	Fields suffixed "Qcflg" carry the quality control flag of the matching
//	measurement ("0" = normal). They are kept as opaque strings.
//
// Result codes:
//
//	resultCode "00" is success. Any other value is an upstream failure
//	(e.g. "03" NO_DATA, "10" INVALID_REQUEST_PARAMETER, "30" SERVICE_KEY_IS_NOT_REGISTERED).
//
// Weather codes:
//
//	Precipitation type (PTY) 0-7, sky condition (SKY) 1/3/4 and weather
//	phenomenon 0-4 are translated to Korean labels by [PrecipitationType],
//	[SkyCondition] and [WeatherPhenomenon]. Wind direction in degrees maps to
//	one of 16 compass points via [DegreesToDirection].
package domain
