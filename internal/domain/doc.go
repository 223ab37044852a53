// Package domain models the Bridger-Teton avalanche center daily
// weather-station summary and its mapping onto the resort's reporting rows.
//
// # Data Source
//
// The upstream PHP API returns one JSON object per requested day with a
// "data" array of station records. Each record carries a free-text
// display_name plus optional daily aggregates: maxtemp, mintemp (F),
// avewindspd, maxgust (mph), ttlwindmiles, newsnow, depth, ttlsnowfall
// (inches). Fields come and go per station and per season; values arrive
// as numbers, strings, or null depending on sensor firmware, which is why
// [Metric] keeps them as verbatim text.
//
// # Target locations
//
// Six canonical zones are extracted per day, in fixed order: Summit,
// RV_Bowl, Raymer, MidMtn, Buff, Base. All but Raymer are resolved by
// case-insensitive substring match of zone keywords against station
// display names, first payload match winning (see [MatchStation]).
//
// Raymer is physically two stations ("Raymer 9,360'" reporting
// temperature/snow, "Raymer Wind" reporting wind) merged into one
// logical record by [MergeRaymer]. Snow fields prefer the temperature
// station and fall back to the wind station.
//
// # Prophix date code
//
// Downstream reporting uses a fiscal calendar that resets on May 1. A date
// is encoded {fiscalYear}D{dayNumber:03d} where fiscalYear is the calendar
// year the running fiscal period began and dayNumber counts days since that
// May 1 inclusive (May 1 -> D001, Apr 30 -> D365 or D366 across a leap
// February). See [ProphixDate].
package domain
