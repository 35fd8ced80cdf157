// Package optcg extracts structured One Piece TCG card data from the
// vendor's card-list pages. It decodes each card's description block into
// a typed record and normalizes localized game terminology (colors,
// attributes, categories, rarities) into stable canonical keys.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, toml/).
package optcg
