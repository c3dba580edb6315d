package reading

import (
	"github.com/novelhub/backend/internal/domain/identity"
	"github.com/novelhub/backend/internal/domain/novel"
)

// ChapterListLockedMessage is surfaced in place of the chapter list
// when a premium title is withheld from a non-VIP caller.
const ChapterListLockedMessage = "A VIP subscription is required to view the chapter list."

// canView is the single entitlement rule: non-premium content is
// always visible, premium content only to an authenticated VIP.
// Visibility is recomputed on every request and never persisted.
func canView(premium bool, viewer *identity.User) bool {
	if !premium {
		return true
	}
	return viewer != nil && viewer.IsVip
}

// CanReadChapter reports whether the viewer may read a single chapter
func CanReadChapter(chapter *novel.Chapter, viewer *identity.User) bool {
	return canView(chapter.IsPremium, viewer)
}

// CanListChapters reports whether the viewer may see a product's
// chapter list. Gating happens at the whole-product granularity: a
// premium title withholds the entire list from anonymous and non-VIP
// callers alike.
func CanListChapters(product *novel.Product, viewer *identity.User) bool {
	return canView(product.IsPremium, viewer)
}
