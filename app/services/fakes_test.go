package services

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/inkwell-cms/InkWell/app/models"
	"github.com/inkwell-cms/InkWell/app/repository"
)

// In-memory repository fakes. They mirror the ordering and filtering contract
// of the MySQL-backed implementations closely enough for service tests.

type fakeArticleRepo struct {
	articles map[uint]*models.Article
	nextID   uint

	lastIncludeDrafts bool
	deleted           []uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[uint]*models.Article{}, nextID: 1}
}

func (f *fakeArticleRepo) Create(article *models.Article) error {
	for _, a := range f.articles {
		if a.Title == article.Title {
			return gorm.ErrDuplicatedKey
		}
	}
	article.ID = f.nextID
	f.nextID++
	cp := *article
	f.articles[cp.ID] = &cp
	return nil
}

func (f *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeArticleRepo) Update(article *models.Article) error {
	if _, ok := f.articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *article
	f.articles[cp.ID] = &cp
	return nil
}

func (f *fakeArticleRepo) ReplaceTags(article *models.Article, tags []models.Tag) error {
	stored, ok := f.articles[article.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Tags = tags
	article.Tags = tags
	return nil
}

func (f *fakeArticleRepo) Delete(id uint) error {
	if _, ok := f.articles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.articles, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeArticleRepo) matching(filters repository.ArticleFilters, includeDrafts bool) []models.Article {
	var out []models.Article
	for _, a := range f.articles {
		if !includeDrafts && !a.IsPublished() {
			continue
		}
		if filters.CategoryID != 0 && a.CategoryID != filters.CategoryID {
			continue
		}
		if filters.TagID != 0 {
			found := false
			for _, t := range a.Tags {
				if t.ID == filters.TagID {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeArticleRepo) List(offset, limit int, filters repository.ArticleFilters, includeDrafts bool) ([]models.Article, error) {
	f.lastIncludeDrafts = includeDrafts
	all := f.matching(filters, includeDrafts)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeArticleRepo) Count(filters repository.ArticleFilters, includeDrafts bool) (int64, error) {
	return int64(len(f.matching(filters, includeDrafts))), nil
}

func (f *fakeArticleRepo) CountByCategory(categoryID uint) (int64, error) {
	var n int64
	for _, a := range f.articles {
		if a.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
	nextID     uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uint]*models.Category{}, nextID: 1}
}

func (f *fakeCategoryRepo) Create(category *models.Category, makeSlug func(name string, id uint) string) error {
	for _, c := range f.categories {
		if c.Name == category.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	category.ID = f.nextID
	f.nextID++
	category.Slug = makeSlug(category.Name, category.ID)
	cp := *category
	f.categories[cp.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetBySlug(slug string) (*models.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) Update(category *models.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *category
	f.categories[cp.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) Delete(id uint) error {
	if _, ok := f.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) all() []models.Category {
	var out []models.Category
	for _, c := range f.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out
}

func (f *fakeCategoryRepo) List(offset, limit int) ([]models.Category, error) {
	all := f.all()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	return f.all(), nil
}

func (f *fakeCategoryRepo) Count() (int64, error) {
	return int64(len(f.categories)), nil
}

type fakeTagRepo struct {
	tags   map[uint]*models.Tag
	nextID uint
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[uint]*models.Tag{}, nextID: 1}
}

func (f *fakeTagRepo) Create(tag *models.Tag) error {
	for _, t := range f.tags {
		if t.Name == tag.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	tag.ID = f.nextID
	f.nextID++
	cp := *tag
	f.tags[cp.ID] = &cp
	return nil
}

func (f *fakeTagRepo) GetByID(id uint) (*models.Tag, error) {
	t, ok := f.tags[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTagRepo) Update(tag *models.Tag) error {
	if _, ok := f.tags[tag.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *tag
	f.tags[cp.ID] = &cp
	return nil
}

func (f *fakeTagRepo) Delete(id uint) error {
	if _, ok := f.tags[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.tags, id)
	return nil
}

func (f *fakeTagRepo) all() []models.Tag {
	var out []models.Tag
	for _, t := range f.tags {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out
}

func (f *fakeTagRepo) List(offset, limit int) ([]models.Tag, error) {
	all := f.all()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeTagRepo) GetAll() ([]models.Tag, error) {
	return f.all(), nil
}

func (f *fakeTagRepo) Count() (int64, error) {
	return int64(len(f.tags)), nil
}

type fakeCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint]*models.Comment{}, nextID: 1}
}

func (f *fakeCommentRepo) Create(comment *models.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	cp := *comment
	f.comments[cp.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) GetByID(id uint) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentRepo) Delete(id uint) error {
	if _, ok := f.comments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) LatestByArticle(articleID uint, limit int) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.comments {
		if c.ArticleID == articleID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeFileRepo struct {
	files       map[uint]*models.File
	attachments map[uint]uint // fileID -> articleID
	nextID      uint
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[uint]*models.File{}, attachments: map[uint]uint{}, nextID: 1}
}

func (f *fakeFileRepo) Create(file *models.File) error {
	file.ID = f.nextID
	f.nextID++
	cp := *file
	f.files[cp.ID] = &cp
	return nil
}

func (f *fakeFileRepo) GetByID(id uint) (*models.File, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *file
	return &cp, nil
}

func (f *fakeFileRepo) Update(file *models.File) error {
	if _, ok := f.files[file.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *file
	f.files[cp.ID] = &cp
	return nil
}

func (f *fakeFileRepo) FirstByArticle(articleID uint) (*models.File, error) {
	var best *models.File
	for fileID, artID := range f.attachments {
		if artID != articleID {
			continue
		}
		file := f.files[fileID]
		if best == nil || file.ID < best.ID {
			best = file
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *best
	return &cp, nil
}

func (f *fakeFileRepo) AttachToArticle(fileID, articleID uint) error {
	f.attachments[fileID] = articleID
	return nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email || u.Nickname == user.Nickname {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[cp.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	f.users[cp.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(offset, limit int) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) GetLatestAdmin() (*models.User, error) {
	var latest *models.User
	for _, u := range f.users {
		if !u.IsAdmin() {
			continue
		}
		if latest == nil || u.ID > latest.ID {
			latest = u
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

// fakeStorage records store/remove calls so tests can assert ordering.
type fakeStorage struct {
	stored  map[string][]byte
	nextSeq int
	ops     []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{stored: map[string][]byte{}, nextSeq: 1}
}

func (f *fakeStorage) Store(data []byte, originalName string) (string, error) {
	path := "blob-" + strings.Repeat("x", f.nextSeq)
	f.nextSeq++
	f.stored[path] = data
	f.ops = append(f.ops, "store:"+path)
	return path, nil
}

func (f *fakeStorage) Remove(path string) error {
	delete(f.stored, path)
	f.ops = append(f.ops, "remove:"+path)
	return nil
}
