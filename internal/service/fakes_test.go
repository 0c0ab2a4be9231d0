package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/limiter"
	"github.com/recipevault/recipevault/internal/model"
	"github.com/recipevault/recipevault/internal/repository"
)

// memDB backs the fake repositories with the same semantics as the real
// store: owner-conditioned reads/writes and FK cascade from recipes to
// ingredients.
type memDB struct {
	users       map[string]*model.User // keyed by email
	recipes     map[uuid.UUID]*model.Recipe
	ingredients map[uuid.UUID]*model.Ingredient
	ingSeq      map[uuid.UUID]int // insertion order, like the seq column
	nextSeq     int
	now         time.Time
}

func newMemDB() *memDB {
	return &memDB{
		users:       map[string]*model.User{},
		recipes:     map[uuid.UUID]*model.Recipe{},
		ingredients: map[uuid.UUID]*model.Ingredient{},
		ingSeq:      map[uuid.UUID]int{},
		now:         time.Now(),
	}
}

// tick returns strictly increasing timestamps so created_at ordering is stable.
func (db *memDB) tick() time.Time {
	db.now = db.now.Add(time.Second)
	return db.now
}

/************ users ************/

type fakeUsers struct {
	db  *memDB
	err error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.err != nil {
		return f.err
	}
	if _, exists := f.db.users[u.Email]; exists {
		return errs.ErrAlreadyExists
	}
	cpy := *u
	cpy.CreatedAt = f.db.tick()
	f.db.users[u.Email] = &cpy
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.db.users[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *u
	return &cpy, nil
}

func (f *fakeUsers) EmailExists(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.db.users[email]
	return ok, nil
}

/************ recipes ************/

type fakeRecipes struct {
	db  *memDB
	err error
}

var _ repository.RecipeRepository = (*fakeRecipes)(nil)

func (f *fakeRecipes) Create(_ context.Context, r *model.Recipe) error {
	if f.err != nil {
		return f.err
	}
	cpy := *r
	cpy.CreatedAt = f.db.tick()
	f.db.recipes[r.ID] = &cpy
	return nil
}

func (f *fakeRecipes) ListByOwner(_ context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Recipe{}
	for _, r := range f.db.recipes {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRecipes) GetOwned(_ context.Context, id, userID uuid.UUID) (*model.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.db.recipes[id]
	if !ok || r.UserID != userID {
		return nil, errs.ErrNotFound
	}
	cpy := *r
	return &cpy, nil
}

func (f *fakeRecipes) UpdateOwned(_ context.Context, r *model.Recipe) error {
	if f.err != nil {
		return f.err
	}
	cur, ok := f.db.recipes[r.ID]
	if !ok || cur.UserID != r.UserID {
		return errs.ErrNotFound
	}
	cpy := *r
	cpy.CreatedAt = cur.CreatedAt
	f.db.recipes[r.ID] = &cpy
	return nil
}

func (f *fakeRecipes) DeleteOwned(_ context.Context, id, userID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	r, ok := f.db.recipes[id]
	if !ok || r.UserID != userID {
		return errs.ErrNotFound
	}
	delete(f.db.recipes, id)
	// FK cascade
	for iid, ing := range f.db.ingredients {
		if ing.RecipeID == id {
			delete(f.db.ingredients, iid)
			delete(f.db.ingSeq, iid)
		}
	}
	return nil
}

func (f *fakeRecipes) OwnedBy(_ context.Context, recipeID, userID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	r, ok := f.db.recipes[recipeID]
	return ok && r.UserID == userID, nil
}

/************ ingredients ************/

type fakeIngredients struct {
	db  *memDB
	err error
}

var _ repository.IngredientRepository = (*fakeIngredients)(nil)

func (f *fakeIngredients) Create(_ context.Context, ing *model.Ingredient) error {
	if f.err != nil {
		return f.err
	}
	cpy := *ing
	f.db.nextSeq++
	f.db.ingSeq[ing.ID] = f.db.nextSeq
	f.db.ingredients[ing.ID] = &cpy
	return nil
}

func (f *fakeIngredients) ListByRecipe(_ context.Context, recipeID uuid.UUID) ([]model.Ingredient, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Ingredient{}
	for _, ing := range f.db.ingredients {
		if ing.RecipeID == recipeID {
			out = append(out, *ing)
		}
	}
	sort.Slice(out, func(i, j int) bool { return f.db.ingSeq[out[i].ID] < f.db.ingSeq[out[j].ID] })
	return out, nil
}

// owner resolves the transitive owner of an ingredient via its parent recipe.
func (f *fakeIngredients) owner(ing *model.Ingredient) (uuid.UUID, bool) {
	r, ok := f.db.recipes[ing.RecipeID]
	if !ok {
		return uuid.Nil, false
	}
	return r.UserID, true
}

func (f *fakeIngredients) GetOwned(_ context.Context, id, userID uuid.UUID) (*model.Ingredient, error) {
	if f.err != nil {
		return nil, f.err
	}
	ing, ok := f.db.ingredients[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if owner, ok := f.owner(ing); !ok || owner != userID {
		return nil, errs.ErrNotFound
	}
	cpy := *ing
	return &cpy, nil
}

func (f *fakeIngredients) UpdateOwned(_ context.Context, in *model.Ingredient, userID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	cur, ok := f.db.ingredients[in.ID]
	if !ok {
		return errs.ErrNotFound
	}
	if owner, ok := f.owner(cur); !ok || owner != userID {
		return errs.ErrNotFound
	}
	cpy := *in
	cpy.RecipeID = cur.RecipeID
	f.db.ingredients[in.ID] = &cpy
	return nil
}

func (f *fakeIngredients) DeleteOwned(_ context.Context, id, userID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	cur, ok := f.db.ingredients[id]
	if !ok {
		return errs.ErrNotFound
	}
	if owner, ok := f.owner(cur); !ok || owner != userID {
		return errs.ErrNotFound
	}
	delete(f.db.ingredients, id)
	delete(f.db.ingSeq, id)
	return nil
}

/************ limiter ************/

type fakeLimiter struct {
	allowOK        bool
	allowErr       error
	blockOnFailure bool
	retryAfter     time.Duration

	failures  int
	successes int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (f *fakeLimiter) Allow(_ context.Context, _ string, _ []byte) (bool, time.Duration, error) {
	if f.allowErr != nil {
		return false, 0, f.allowErr
	}
	if !f.allowOK {
		return false, f.retryAfter, nil
	}
	return true, 0, nil
}

func (f *fakeLimiter) Success(_ context.Context, _ string, _ []byte) error {
	f.successes++
	return nil
}

func (f *fakeLimiter) Failure(_ context.Context, _ string, _ []byte) (bool, time.Duration, error) {
	f.failures++
	if f.blockOnFailure {
		return true, f.retryAfter, nil
	}
	return false, 0, nil
}
