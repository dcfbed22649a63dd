package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
)

// In-memory repository stubs shared by the handler tests.

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (s *userRepoStub) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *userRepoStub) ExistsByPhoneNumber(_ context.Context, phoneNumber string) (bool, error) {
	for _, u := range s.users {
		if u.PhoneNumber == phoneNumber {
			return true, nil
		}
	}
	return false, nil
}

func (s *userRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.UserStatus) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.Status = status
	return nil
}

func (s *userRepoStub) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (s *userRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	return s.UpdateStatus(context.Background(), id, entities.UserStatusDeleted)
}

func (s *userRepoStub) List(_ context.Context, _ string, _, _ int) ([]*entities.User, int64, error) {
	out := make([]*entities.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

type userTypeRepoStub struct {
	byName map[string]*entities.UserType
}

func newUserTypeRepoStub(names ...string) *userTypeRepoStub {
	s := &userTypeRepoStub{byName: map[string]*entities.UserType{}}
	for _, name := range names {
		s.byName[name] = &entities.UserType{ID: uuid.New(), Name: name}
	}
	return s
}

func (s *userTypeRepoStub) Create(_ context.Context, userType *entities.UserType) error {
	s.byName[userType.Name] = userType
	return nil
}

func (s *userTypeRepoStub) GetByName(_ context.Context, name string) (*entities.UserType, error) {
	ut, ok := s.byName[name]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return ut, nil
}

func (s *userTypeRepoStub) List(_ context.Context) ([]*entities.UserType, error) {
	out := make([]*entities.UserType, 0, len(s.byName))
	for _, ut := range s.byName {
		out = append(out, ut)
	}
	return out, nil
}

type creatorRepoStub struct {
	creators map[uuid.UUID]*entities.Creator
	seq      int
}

func newCreatorRepoStub() *creatorRepoStub {
	return &creatorRepoStub{creators: map[uuid.UUID]*entities.Creator{}}
}

func (s *creatorRepoStub) Create(_ context.Context, creator *entities.Creator) error {
	s.creators[creator.ID] = creator
	return nil
}

func (s *creatorRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Creator, error) {
	cr, ok := s.creators[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return cr, nil
}

func (s *creatorRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.Creator, error) {
	for _, cr := range s.creators {
		if cr.UserID == userID {
			return cr, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *creatorRepoStub) Update(_ context.Context, creator *entities.Creator) error {
	if _, ok := s.creators[creator.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.creators[creator.ID] = creator
	return nil
}

func (s *creatorRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.UserStatus) error {
	cr, ok := s.creators[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	cr.Status = status
	return nil
}

func (s *creatorRepoStub) List(_ context.Context, status entities.UserStatus, _, _ int) ([]*entities.Creator, int64, error) {
	out := make([]*entities.Creator, 0, len(s.creators))
	for _, cr := range s.creators {
		if status != "" && cr.Status != status {
			continue
		}
		out = append(out, cr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatorID < out[j].CreatorID })
	return out, int64(len(out)), nil
}

func (s *creatorRepoStub) NextCreatorID(_ context.Context) (string, error) {
	s.seq++
	return fmt.Sprintf("CA%05d", s.seq), nil
}

type brandRepoStub struct {
	brands map[uuid.UUID]*entities.Brand
}

func newBrandRepoStub() *brandRepoStub {
	return &brandRepoStub{brands: map[uuid.UUID]*entities.Brand{}}
}

func (s *brandRepoStub) Create(_ context.Context, brand *entities.Brand) error {
	s.brands[brand.ID] = brand
	return nil
}

func (s *brandRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Brand, error) {
	b, ok := s.brands[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return b, nil
}

func (s *brandRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.Brand, error) {
	for _, b := range s.brands {
		if b.UserID == userID {
			return b, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *brandRepoStub) Update(_ context.Context, brand *entities.Brand) error {
	if _, ok := s.brands[brand.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.brands[brand.ID] = brand
	return nil
}

func (s *brandRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.UserStatus) error {
	b, ok := s.brands[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	b.Status = status
	return nil
}

func (s *brandRepoStub) List(_ context.Context, status entities.UserStatus, _, _ int) ([]*entities.Brand, int64, error) {
	out := make([]*entities.Brand, 0, len(s.brands))
	for _, b := range s.brands {
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

type roleRepoStub struct {
	roles       map[uuid.UUID]*entities.Role
	memberships map[uuid.UUID]uuid.UUID // userID -> roleID
}

func newRoleRepoStub() *roleRepoStub {
	return &roleRepoStub{
		roles:       map[uuid.UUID]*entities.Role{},
		memberships: map[uuid.UUID]uuid.UUID{},
	}
}

func (s *roleRepoStub) Create(_ context.Context, role *entities.Role) error {
	s.roles[role.ID] = role
	return nil
}

func (s *roleRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Role, error) {
	r, ok := s.roles[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return r, nil
}

func (s *roleRepoStub) GetByName(_ context.Context, name string) (*entities.Role, error) {
	for _, r := range s.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *roleRepoStub) List(_ context.Context) ([]*entities.Role, error) {
	out := make([]*entities.Role, 0, len(s.roles))
	for _, r := range s.roles {
		out = append(out, r)
	}
	return out, nil
}

func (s *roleRepoStub) Update(_ context.Context, role *entities.Role) error {
	if _, ok := s.roles[role.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.roles[role.ID] = role
	return nil
}

func (s *roleRepoStub) SyncAssignedUsers(_ context.Context, roleID uuid.UUID, userIDs []uuid.UUID) error {
	for userID, current := range s.memberships {
		if current == roleID {
			delete(s.memberships, userID)
		}
	}
	for _, userID := range userIDs {
		s.memberships[userID] = roleID
	}
	return nil
}

func (s *roleRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.roles[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.roles, id)
	for userID, roleID := range s.memberships {
		if roleID == id {
			delete(s.memberships, userID)
		}
	}
	return nil
}

func (s *roleRepoStub) MemberIDs(_ context.Context, roleID uuid.UUID) ([]uuid.UUID, error) {
	out := []uuid.UUID{}
	for userID, current := range s.memberships {
		if current == roleID {
			out = append(out, userID)
		}
	}
	return out, nil
}

func (s *roleRepoStub) PermissionsForUser(_ context.Context, userID uuid.UUID) (string, []entities.Permission, error) {
	roleID, ok := s.memberships[userID]
	if !ok {
		return "", nil, nil
	}
	role, ok := s.roles[roleID]
	if !ok {
		return "", nil, nil
	}
	return role.Name, role.Permissions, nil
}

type kycRepoStub struct {
	docs    map[uuid.UUID]*entities.KYCDocument
	reviews map[uuid.UUID][]*entities.DocumentReview
}

func newKYCRepoStub() *kycRepoStub {
	return &kycRepoStub{
		docs:    map[uuid.UUID]*entities.KYCDocument{},
		reviews: map[uuid.UUID][]*entities.DocumentReview{},
	}
}

func (s *kycRepoStub) Create(_ context.Context, doc *entities.KYCDocument) error {
	s.docs[doc.ID] = doc
	return nil
}

func (s *kycRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.KYCDocument, error) {
	d, ok := s.docs[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return d, nil
}

func (s *kycRepoStub) Update(_ context.Context, doc *entities.KYCDocument) error {
	if _, ok := s.docs[doc.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.docs[doc.ID] = doc
	return nil
}

func (s *kycRepoStub) UpdateVerification(_ context.Context, id uuid.UUID, status entities.DocumentStatus, remarks null.String, verifiedBy uuid.UUID, verifiedAt time.Time) error {
	d, ok := s.docs[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	d.Status = status
	d.VerificationRemarks = remarks
	d.VerifiedBy = null.StringFrom(verifiedBy.String())
	d.VerifiedAt = null.TimeFrom(verifiedAt)
	return nil
}

func (s *kycRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.docs[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *kycRepoStub) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.KYCDocument, error) {
	out := []*entities.KYCDocument{}
	for _, d := range s.docs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *kycRepoStub) ListForVerification(_ context.Context, filter entities.DocumentFilter) ([]*entities.KYCDocument, int64, error) {
	out := []*entities.KYCDocument{}
	for _, d := range s.docs {
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if filter.DocumentType != "" && d.DocumentType != filter.DocumentType {
			continue
		}
		if filter.UserID != uuid.Nil && d.UserID != filter.UserID {
			continue
		}
		out = append(out, d)
	}
	return out, int64(len(out)), nil
}

func (s *kycRepoStub) ListVerifiedExpired(_ context.Context, before time.Time, _ int) ([]*entities.KYCDocument, error) {
	out := []*entities.KYCDocument{}
	for _, d := range s.docs {
		if d.Status == entities.DocumentStatusVerified && d.ExpiresAt.Valid && d.ExpiresAt.Time.Before(before) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *kycRepoStub) AppendReview(_ context.Context, review *entities.DocumentReview) error {
	s.reviews[review.DocumentID] = append(s.reviews[review.DocumentID], review)
	return nil
}

func (s *kycRepoStub) ListReviews(_ context.Context, documentID uuid.UUID) ([]*entities.DocumentReview, error) {
	return s.reviews[documentID], nil
}

// fileStoreStub keeps uploaded bytes in memory.
type fileStoreStub struct {
	files map[string][]byte
}

func newFileStoreStub() *fileStoreStub {
	return &fileStoreStub{files: map[string][]byte{}}
}

func (s *fileStoreStub) Save(r io.Reader, originalName string) (string, int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	name := uuid.NewString() + "-" + originalName
	s.files[name] = data
	return name, int64(len(data)), nil
}

func (s *fileStoreStub) Open(storedName string) (io.ReadCloser, error) {
	data, ok := s.files[storedName]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fileStoreStub) Remove(storedName string) error {
	delete(s.files, storedName)
	return nil
}
