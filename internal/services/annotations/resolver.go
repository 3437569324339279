package annotations

import (
	"context"
	"errors"

	"github.com/killallgit/jamjot-api/internal/models"
	"github.com/killallgit/jamjot-api/internal/services/catalog"

	apperrors "github.com/killallgit/jamjot-api/pkg/errors"
)

// ResolutionKind is the outcome of resolving an entity reference
type ResolutionKind int

const (
	// Found means a local shadow row exists and belongs to the caller
	Found ResolutionKind = iota
	// NeedsMaterialization means the entity exists remotely, belongs to the
	// caller, and has no local shadow yet
	NeedsMaterialization
	// Rejected means the caller may not see the entity
	Rejected
)

func (k ResolutionKind) String() string {
	switch k {
	case Found:
		return "found"
	case NeedsMaterialization:
		return "needs_materialization"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// RejectReason records why a reference was rejected. Both reasons surface
// to callers as the same NotFound so existence is never leaked.
type RejectReason int

const (
	// Absent means the entity does not exist locally or remotely
	Absent RejectReason = iota
	// Hidden means the entity exists but belongs to another user
	Hidden
)

func (r RejectReason) String() string {
	if r == Hidden {
		return "hidden"
	}
	return "absent"
}

// Rejection describes a rejected reference
type Rejection struct {
	Reason   RejectReason
	Resource string
	ID       string
}

// Err returns the caller-facing error, identical for Absent and Hidden
func (r Rejection) Err() error {
	return apperrors.NotFound(r.Resource, r.ID)
}

// Resolution is the result of resolving a reference to T
type Resolution[T any] struct {
	Kind      ResolutionKind
	Value     *T
	Rejection Rejection
}

func found[T any](value *T) Resolution[T] {
	return Resolution[T]{Kind: Found, Value: value}
}

func needsMaterialization[T any]() Resolution[T] {
	return Resolution[T]{Kind: NeedsMaterialization}
}

func rejectedWith[T any](rejection Rejection) Resolution[T] {
	return Resolution[T]{Kind: Rejected, Rejection: rejection}
}

func (s *ServiceImpl) reject(reason RejectReason, resource, id string) Rejection {
	s.logger.Debug("reference rejected", "resource", resource, "id", id, "reason", reason)
	return Rejection{Reason: reason, Resource: resource, ID: id}
}

// confirmPlaylist checks the catalog for a playlist owned by userID. Found
// carries the catalog record.
func (s *ServiceImpl) confirmPlaylist(ctx context.Context, userID, playlistID string) (Resolution[catalog.Playlist], error) {
	remote, err := s.catalog.Playlist(ctx, playlistID)
	if err != nil {
		if catalog.IsNotFound(err) {
			return rejectedWith[catalog.Playlist](s.reject(Absent, "playlist", playlistID)), nil
		}
		return Resolution[catalog.Playlist]{}, remoteFailure(err)
	}
	if remote.OwnerID != userID {
		return rejectedWith[catalog.Playlist](s.reject(Hidden, "playlist", playlistID)), nil
	}
	return found(remote), nil
}

// confirmMembership scans the catalog listing for the exact track and
// position. Found carries the listing entry.
func (s *ServiceImpl) confirmMembership(ctx context.Context, key models.MembershipKey) (Resolution[catalog.PlaylistTrack], error) {
	if key.Position < 1 {
		return rejectedWith[catalog.PlaylistTrack](s.reject(Absent, "track", key.String())), nil
	}

	for item, err := range s.catalog.PlaylistTracks(ctx, key.PlaylistID) {
		if err != nil {
			if catalog.IsNotFound(err) {
				break
			}
			return Resolution[catalog.PlaylistTrack]{}, remoteFailure(err)
		}
		if item.Position > key.Position {
			break
		}
		if item.Position == key.Position && item.TrackID == key.TrackID {
			return found(&item), nil
		}
	}
	return rejectedWith[catalog.PlaylistTrack](s.reject(Absent, "track", key.String())), nil
}

// resolvePlaylist decides whether userID can annotate playlistID and whether
// a shadow row already exists.
func (s *ServiceImpl) resolvePlaylist(ctx context.Context, userID, playlistID string) (Resolution[models.Playlist], error) {
	local, err := s.repo.GetPlaylist(ctx, playlistID)
	switch {
	case err == nil:
		if !local.OwnedBy(userID) {
			return rejectedWith[models.Playlist](s.reject(Hidden, "playlist", playlistID)), nil
		}
		return found(local), nil
	case !errors.Is(err, ErrNotFound):
		return Resolution[models.Playlist]{}, err
	}

	remote, err := s.confirmPlaylist(ctx, userID, playlistID)
	if err != nil {
		return Resolution[models.Playlist]{}, err
	}
	if remote.Kind == Rejected {
		return rejectedWith[models.Playlist](remote.Rejection), nil
	}
	return needsMaterialization[models.Playlist](), nil
}

// resolveMembership resolves one occurrence of a track in a playlist. The
// playlist is resolved first and its rejection is passed through unchanged.
func (s *ServiceImpl) resolveMembership(ctx context.Context, userID string, key models.MembershipKey) (Resolution[models.PlaylistMember], error) {
	playlist, err := s.resolvePlaylist(ctx, userID, key.PlaylistID)
	if err != nil {
		return Resolution[models.PlaylistMember]{}, err
	}
	if playlist.Kind == Rejected {
		return rejectedWith[models.PlaylistMember](playlist.Rejection), nil
	}

	if playlist.Kind == Found && key.Position >= 1 {
		member, err := s.repo.GetMembership(ctx, key)
		if err == nil {
			return found(member), nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Resolution[models.PlaylistMember]{}, err
		}
	}

	remote, err := s.confirmMembership(ctx, key)
	if err != nil {
		return Resolution[models.PlaylistMember]{}, err
	}
	if remote.Kind == Rejected {
		return rejectedWith[models.PlaylistMember](remote.Rejection), nil
	}
	return needsMaterialization[models.PlaylistMember](), nil
}
