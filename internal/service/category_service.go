package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/melisbekov/pdd-api/internal/repository"
	"gorm.io/gorm"
)

type CategoryService interface {
	List() ([]dto.CategoryResponse, error)
	Get(id uint) (*dto.CategoryResponse, error)
	Create(req dto.CategoryCreateRequest) (*dto.CategoryResponse, error)
	Update(id uint, req dto.CategoryCreateRequest) (*dto.CategoryResponse, error)
	Delete(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List() ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, dto.CategoryResponse{ID: c.ID, CategoryName: c.CategoryName})
	}
	return resp, nil
}

func (s *categoryService) Get(id uint) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching category: %w", err)
	}
	var resp dto.CategoryResponse
	if err := copier.Copy(&resp, category); err != nil {
		return nil, fmt.Errorf("error preparing category response: %w", err)
	}
	return &resp, nil
}

func (s *categoryService) Create(req dto.CategoryCreateRequest) (*dto.CategoryResponse, error) {
	if _, err := s.categoryRepo.FindByName(req.CategoryName); err == nil {
		return nil, fmt.Errorf("category name %w", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking category name: %w", err)
	}

	category := model.Category{CategoryName: req.CategoryName}
	if err := s.categoryRepo.Create(&category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &dto.CategoryResponse{ID: category.ID, CategoryName: category.CategoryName}, nil
}

func (s *categoryService) Update(id uint, req dto.CategoryCreateRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching category: %w", err)
	}

	category.CategoryName = req.CategoryName
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &dto.CategoryResponse{ID: category.ID, CategoryName: category.CategoryName}, nil
}

func (s *categoryService) Delete(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("error fetching category: %w", err)
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
