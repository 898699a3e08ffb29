// Package match decides when records from two platforms denote the same book
// and consolidates them.
//
// The matcher compares normalized titles and authors: titles match on
// equality, containment (subtitle differences), or a bounded Levenshtein
// distance relative to the shorter title; authors match leniently, since one
// platform frequently omits them. A hit is merged into a single two-sided
// record whose id is re-derived from the merged title and author.
//
// Candidate evaluation returns the first qualifying record in store order
// rather than the lowest-distance one. When several unmatched records could
// plausibly match, the outcome is therefore order-dependent; callers that
// need stricter behavior must disambiguate upstream.
package match
