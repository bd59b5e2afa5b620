// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package substrate

// Source defines valid config sources as those who can apply
// themselves onto a store's definition tree. Sources are plain I/O
// adapters: they produce nested trees and feed them to [Store.Merge],
// nothing more.
type Source interface {
	Apply(*Store) error
}
