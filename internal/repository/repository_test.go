package repository_test

import (
	"context"
	"errors"

	"catcare/internal/db"
	"catcare/internal/repository"
	"catcare/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CareRepository", func() {
	var (
		fakeStorage *fake.Storage
		repo        *repository.CareRepository
		ctx         context.Context

		fakeErr error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewCareRepository(fakeStorage)
		ctx = context.Background()

		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		It("should migrate the user and history tables", func() {
			Expect(repo.Migrate()).To(Succeed())

			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(2))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
			Expect(tables[1]).To(BeAssignableToTypeOf(&repository.History{}))
		})

		When("the migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(repo.Migrate()).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user    repository.User
			created repository.User
			err     error
		)

		BeforeEach(func() {
			user = repository.User{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "hashed",
			}

			fakeStorage.InsertStub = func(_ context.Context, record interface{}) error {
				record.(*repository.User).ID = 7
				return nil
			}
		})

		JustBeforeEach(func() {
			created, err = repo.CreateUser(ctx, user)
		})

		When("the insert succeeds", func() {
			It("should return the user with the generated id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created.ID).To(Equal(uint(7)))
				Expect(created.Email).To(Equal(user.Email))

				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
			})
		})

		When("the email column rejects a duplicate", func() {
			BeforeEach(func() {
				fakeStorage.InsertStub = nil
				fakeStorage.InsertReturns(db.ErrDuplicateKey)
			})

			It("should return email taken error", func() {
				Expect(err).To(MatchError(repository.ErrEmailTaken))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertStub = nil
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(errors.Is(err, repository.ErrEmailTaken)).To(BeFalse())
			})
		})
	})

	Describe("GetUserByEmail", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByEmail(ctx, "alice@example.com")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ interface{}, entity interface{}) error {
					*entity.(*repository.User) = repository.User{
						ID:       1,
						Name:     "Alice",
						Email:    "alice@example.com",
						Password: "hashed",
					}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(1)))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("email"))
				Expect(value).To(Equal("alice@example.com"))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(errors.Is(err, repository.ErrUserNotFound)).To(BeFalse())
			})
		})
	})

	Describe("SaveHistory", func() {
		var record repository.History

		BeforeEach(func() {
			record = repository.History{
				UserID: 1,
				Method: repository.MethodForm,
				Input:  `{"Age":3}`,
				Result: "healthy",
			}
		})

		It("should insert the record", func() {
			Expect(repo.SaveHistory(ctx, record)).To(Succeed())

			Expect(fakeStorage.InsertCallCount()).To(Equal(1))
			_, inserted := fakeStorage.InsertArgsForCall(0)
			Expect(inserted).To(Equal(&record))
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(repo.SaveHistory(ctx, record)).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserHistory", func() {
		var (
			records []repository.History
			err     error
		)

		JustBeforeEach(func() {
			records, err = repo.GetUserHistory(ctx, 1)
		})

		When("the user has records", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(_ context.Context, _ string, _ interface{}, entity interface{}) error {
					*entity.(*[]repository.History) = []repository.History{
						{ID: 1, UserID: 1, Method: repository.MethodForm, Input: `{"Age":3}`, Result: "healthy"},
						{ID: 2, UserID: 1, Method: repository.MethodImage, Input: `{"filename":"cat.jpg"}`, Result: "Ringworm"},
					}
					return nil
				}
			})

			It("should return all records for the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))

				Expect(fakeStorage.GetAllByCallCount()).To(Equal(1))
				_, column, value, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(column).To(Equal("user_id"))
				Expect(value).To(Equal(uint(1)))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
