package core_test

import (
	"context"
	"encoding/json"
	"errors"

	"catcare/internal/core"
	"catcare/internal/core/fake"
	"catcare/internal/inference"
	"catcare/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("CatCare", func() {
	var (
		fakeRepo      *fake.Repository
		fakeInference *fake.InferenceService
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context

		catcare *core.CatCare

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeInference = new(fake.InferenceService)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		catcare = core.NewCatCare(fakeLogger, fakeRepo, fakeInference)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg  core.RegisterMessage
			user core.UserRecord
			err  error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "testpass",
			}

			fakeRepo.CreateUserStub = func(_ context.Context, u repository.User) (repository.User, error) {
				u.ID = 1
				return u, nil
			}
		})

		JustBeforeEach(func() {
			user, err = catcare.Register(ctx, msg)
		})

		When("registration succeeds", func() {
			It("should return the created user without the password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(core.UserRecord{
					ID:    1,
					Name:  "Alice",
					Email: "alice@example.com",
				}))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, argUser := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUser.Name).To(Equal(msg.Name))
				Expect(argUser.Email).To(Equal(msg.Email))
			})

			It("should store a salted hash, never the plaintext", func() {
				_, argUser := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUser.Password).NotTo(Equal(msg.Password))
				Expect(bcrypt.CompareHashAndPassword([]byte(argUser.Password), []byte(msg.Password))).To(Succeed())
			})
		})

		When("the email is already registered", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrEmailTaken)
			})

			It("should return duplicate email error", func() {
				Expect(err).To(MatchError(core.ErrDuplicateEmail))
			})
		})

		When("the store insert fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(errors.Is(err, core.ErrDuplicateEmail)).To(BeFalse())
			})
		})
	})

	Describe("Login", func() {
		var (
			msg            core.LoginMessage
			user           core.UserRecord
			err            error
			hashedPassword string
		)

		BeforeEach(func() {
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"

			msg = core.LoginMessage{
				Email:    "alice@example.com",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			user, err = catcare.Login(ctx, msg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					ID:       1,
					Name:     "Alice",
					Email:    msg.Email,
					Password: hashedPassword,
				}, nil)
			})

			It("should return the matched user record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(core.UserRecord{
					ID:    1,
					Name:  "Alice",
					Email: "alice@example.com",
				}))

				Expect(fakeRepo.GetUserByEmailCallCount()).To(Equal(1))
				_, argEmail := fakeRepo.GetUserByEmailArgsForCall(0)
				Expect(argEmail).To(Equal(msg.Email))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					ID:       1,
					Email:    msg.Email,
					Password: hashedPassword,
				}, nil)
				msg.Password = "wrongpass"
			})

			It("should return the same invalid credentials error as an unknown email", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the store lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(errors.Is(err, core.ErrInvalidCredentials)).To(BeFalse())
			})
		})
	})

	Describe("PredictForm", func() {
		var (
			userID     uint
			data       json.RawMessage
			prediction core.Prediction
			err        error
		)

		BeforeEach(func() {
			userID = 1
			data = json.RawMessage(`{"Age":3,"Breed":"Persian"}`)
		})

		JustBeforeEach(func() {
			prediction, err = catcare.PredictForm(ctx, userID, data)
		})

		When("the inference call succeeds", func() {
			BeforeEach(func() {
				fakeInference.PredictFormReturns(inference.Result{
					Body:       []byte(`{"prediction":"healthy","confidence":"98.20%"}`),
					Prediction: "healthy",
				}, nil)
			})

			It("should return the upstream body verbatim", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(prediction.Body).To(Equal([]byte(`{"prediction":"healthy","confidence":"98.20%"}`)))

				Expect(fakeInference.PredictFormCallCount()).To(Equal(1))
				_, argData := fakeInference.PredictFormArgsForCall(0)
				Expect(argData).To(Equal(data))
			})

			It("should append one history record for the round-trip", func() {
				Expect(fakeRepo.SaveHistoryCallCount()).To(Equal(1))
				_, record := fakeRepo.SaveHistoryArgsForCall(0)
				Expect(record).To(Equal(repository.History{
					UserID: userID,
					Method: repository.MethodForm,
					Input:  string(data),
					Result: "healthy",
				}))
			})
		})

		When("the inference call fails", func() {
			BeforeEach(func() {
				fakeInference.PredictFormReturns(inference.Result{}, fakeErr)
			})

			It("should return the error and write no history record", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.SaveHistoryCallCount()).To(Equal(0))
			})
		})

		When("the inference call times out", func() {
			BeforeEach(func() {
				fakeInference.PredictFormReturns(inference.Result{}, inference.ErrTimeout)
			})

			It("should return a prediction timeout error", func() {
				Expect(err).To(MatchError(core.ErrPredictionTimeout))
				Expect(fakeRepo.SaveHistoryCallCount()).To(Equal(0))
			})
		})

		When("the history write fails", func() {
			BeforeEach(func() {
				fakeInference.PredictFormReturns(inference.Result{
					Body:       []byte(`{"prediction":"healthy"}`),
					Prediction: "healthy",
				}, nil)
				fakeRepo.SaveHistoryReturns(fakeErr)
			})

			It("should not report success", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("PredictImage", func() {
		var (
			userID     uint
			upload     core.ImageUpload
			prediction core.Prediction
			err        error
		)

		BeforeEach(func() {
			userID = 1
			upload = core.ImageUpload{
				Filename:    "cat.jpg",
				ContentType: "image/jpeg",
				Content:     []byte("fake image bytes"),
			}
		})

		JustBeforeEach(func() {
			prediction, err = catcare.PredictImage(ctx, userID, upload)
		})

		When("the inference call succeeds", func() {
			BeforeEach(func() {
				fakeInference.PredictImageReturns(inference.Result{
					Body:       []byte(`{"prediction":"Ringworm","confidence":"91.03%"}`),
					Prediction: "Ringworm",
				}, nil)
			})

			It("should return the upstream body verbatim", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(prediction.Body).To(Equal([]byte(`{"prediction":"Ringworm","confidence":"91.03%"}`)))

				Expect(fakeInference.PredictImageCallCount()).To(Equal(1))
				_, argUpload := fakeInference.PredictImageArgsForCall(0)
				Expect(argUpload).To(Equal(inference.Upload{
					Filename:    "cat.jpg",
					ContentType: "image/jpeg",
					Content:     []byte("fake image bytes"),
				}))
			})

			It("should record only the filename, not the image bytes", func() {
				Expect(fakeRepo.SaveHistoryCallCount()).To(Equal(1))
				_, record := fakeRepo.SaveHistoryArgsForCall(0)
				Expect(record.Method).To(Equal(repository.MethodImage))
				Expect(record.Input).To(Equal(`{"filename":"cat.jpg"}`))
				Expect(record.Result).To(Equal("Ringworm"))
			})
		})

		When("the user id is missing", func() {
			BeforeEach(func() {
				userID = 0
			})

			It("should fail before any remote call or store write", func() {
				Expect(err).To(MatchError(core.ErrMissingInput))
				Expect(fakeInference.PredictImageCallCount()).To(Equal(0))
				Expect(fakeRepo.SaveHistoryCallCount()).To(Equal(0))
			})
		})

		When("the file content is missing", func() {
			BeforeEach(func() {
				upload.Content = nil
			})

			It("should fail before any remote call or store write", func() {
				Expect(err).To(MatchError(core.ErrMissingInput))
				Expect(fakeInference.PredictImageCallCount()).To(Equal(0))
				Expect(fakeRepo.SaveHistoryCallCount()).To(Equal(0))
			})
		})

		When("the inference call fails", func() {
			BeforeEach(func() {
				fakeInference.PredictImageReturns(inference.Result{}, fakeErr)
			})

			It("should return the error and write no history record", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.SaveHistoryCallCount()).To(Equal(0))
			})
		})

		When("the history write fails", func() {
			BeforeEach(func() {
				fakeInference.PredictImageReturns(inference.Result{
					Body:       []byte(`{"prediction":"Scabies"}`),
					Prediction: "Scabies",
				}, nil)
				fakeRepo.SaveHistoryReturns(fakeErr)
			})

			It("should not report success", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UserHistory", func() {
		var (
			entries []core.HistoryEntry
			err     error
		)

		JustBeforeEach(func() {
			entries, err = catcare.UserHistory(ctx, 1)
		})

		When("the user has history", func() {
			BeforeEach(func() {
				fakeRepo.GetUserHistoryReturns([]repository.History{
					{ID: 1, UserID: 1, Method: repository.MethodForm, Input: `{"Age":3}`, Result: "healthy"},
					{ID: 2, UserID: 1, Method: repository.MethodImage, Input: `{"filename":"cat.jpg"}`, Result: "Ringworm"},
				}, nil)
			})

			It("should return the entries", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(2))
				Expect(entries[0].Method).To(Equal("form"))
				Expect(entries[1].Method).To(Equal("image"))

				Expect(fakeRepo.GetUserHistoryCallCount()).To(Equal(1))
				_, argUserID := fakeRepo.GetUserHistoryArgsForCall(0)
				Expect(argUserID).To(Equal(uint(1)))
			})
		})

		When("the store lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserHistoryReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
