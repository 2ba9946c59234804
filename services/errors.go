package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUnauthorized       = errors.New("unauthorized: user not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("forbidden: insufficient permissions")
	ErrAdminOnly          = errors.New("only admin may manage users")
	ErrReferenceAdminOnly = errors.New("only admin may change reference data")
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrWrongPassword      = errors.New("current password is incorrect")

	ErrAlreadyDispositioned = errors.New("this letter has already been dispositioned")
	ErrJabatanRequired      = errors.New("target jabatan is required")
	ErrInvalidJabatan       = errors.New("jabatan is not a recognised BAPPEDA position")
	ErrInvalidTransition    = errors.New("target jabatan does not follow the current disposisi holder")
	ErrNotDisposisiHolder   = errors.New("only the current disposisi holder may forward it")

	ErrNomorSuratGeneration = errors.New("failed to generate nomor surat")
	ErrCodesRequired        = errors.New("klasifikasi and bidang codes are required")
	ErrUnknownKlasifikasi   = errors.New("klasifikasi code not found")
	ErrUnknownBidang        = errors.New("bidang code not found")
	ErrUnknownPenandatangan = errors.New("penandatangan must be an existing user")

	ErrNotArchived   = errors.New("only archived letters can be deleted")
	ErrInvalidJenis  = errors.New("jenis must be masuk or keluar")
	ErrDuplicateKode = errors.New("kode already exists")

	ErrLastAdmin    = errors.New("cannot remove the last admin")
	ErrSelfDelete   = errors.New("you cannot delete your own account")
	ErrInvalidRole  = errors.New("role must be admin or user")
	ErrInvalidSifat = errors.New("sifat must be Biasa, Penting, Segera or Rahasia")

	ErrInvalidReportQuery = errors.New("report needs jenis, tahun and bulan")
)

// notFound maps gorm.ErrRecordNotFound to ErrNotFound and leaves other errors alone.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
