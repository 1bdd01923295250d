package domain

import "time"

type Profile struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	FullName  string    `json:"full_name"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileRepository interface {
	FindByID(id int64) (*Profile, error)
	FindByUserID(userID int64) (*Profile, error)
	FindAll() ([]*Profile, error)
	Create(profile *Profile) error
	Update(profile *Profile) error
	Delete(id int64) error
}

type ProfileInput struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
}

// ProfilePatch carries a partial update. Absent keys leave the field
// untouched; a null full_name is rejected, a null bio clears it.
type ProfilePatch struct {
	FullName Field[string] `json:"full_name"`
	Bio      Field[string] `json:"bio"`
}

type ProfileService interface {
	ListProfiles(caller *User) ([]*Profile, error)
	CreateProfile(caller *User, input ProfileInput) (*Profile, error)
	GetProfile(caller *User, id int64) (*Profile, error)
	UpdateProfile(caller *User, id int64, patch ProfilePatch) (*Profile, error)
	DeleteProfile(caller *User, id int64) error

	// The /profiles/me shorthand, scoped to the caller's own profile.
	GetMyProfile(caller *User) (*Profile, error)
	CreateMyProfile(caller *User, fullName, bio string) (*Profile, error)
	UpdateMyProfile(caller *User, patch ProfilePatch) (*Profile, error)
	DeleteMyProfile(caller *User) error
}
