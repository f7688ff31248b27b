package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/helpers"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// courseTitleConstraint is the unique constraint guarding course titles.
const courseTitleConstraint = "courses_title_key"

var courseColumns = []string{
	"id", "title", "description", "image", "category", "price", "learned",
	"video", "instructor_id", "created_at", "updated_at",
}

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	DB *pgxpool.Pool
}

// NewCourseRepository creates a new instance of CourseRepository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) selectCourseQuery() squirrel.SelectBuilder {
	return squirrel.Select(courseColumns...).
		From("courses").
		PlaceholderFormat(squirrel.Dollar)
}

// scanCourse scans a single row into a Course.
func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Image, &c.Category, &c.Price, &c.Learned,
		&c.Video, &c.InstructorID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// queryCourses runs a list query and collects every row.
func (r *CourseRepository) queryCourses(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*models.Course, error) {
	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error building course list SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error executing course list query")
		return nil, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Str("op", op).Msg("Error scanning course row")
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error iterating course rows")
		return nil, err
	}
	return courses, nil
}

// CreateCourse inserts a course and returns the stored row. A duplicate title
// is rejected by the database, so concurrent creators cannot both succeed.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	id := course.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sqlStr, args, err := squirrel.Insert("courses").
		Columns("id", "title", "description", "image", "category", "price", "learned", "video", "instructor_id").
		Values(id, course.Title, course.Description, course.Image, course.Category, course.Price, course.Learned, course.Video, course.InstructorID).
		Suffix("RETURNING " + strings.Join(courseColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return nil, err
	}

	created, err := scanCourse(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, courseTitleConstraint) {
			return nil, apperrors.ErrCourseTitleExists
		}
		logger.Error().Err(err).Str("title", course.Title).Msg("Error executing create course query")
		return nil, err
	}
	return created, nil
}

// GetCourseByID retrieves a single course by its ID.
func (r *CourseRepository) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sqlStr, args, err := r.selectCourseQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, err
	}

	course, err := scanCourse(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error executing get course by ID query")
		return nil, err
	}
	return course, nil
}

// UpdateCourse writes the present fields of patch and returns the updated row.
// Renaming onto another course's title fails with ErrCourseTitleExists.
func (r *CourseRepository) UpdateCourse(ctx context.Context, id uuid.UUID, patch models.CoursePatch) (*models.Course, error) {
	if patch.IsEmpty() {
		return r.GetCourseByID(ctx, id)
	}

	sqlStr, args, err := squirrel.Update("courses").
		SetMap(patchColumns(patch)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(courseColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return nil, err
	}

	updated, err := scanCourse(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, courseTitleConstraint) {
			return nil, apperrors.ErrCourseTitleExists
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error executing update course query")
		return nil, err
	}
	return updated, nil
}

// DeleteCourse removes a course by its ID.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := squirrel.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error executing delete course query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// GetAllCourses retrieves every course, oldest first.
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return r.queryCourses(ctx, r.selectCourseQuery().OrderBy("created_at ASC", "id ASC"), "GetAllCourses")
}

// SearchCoursesByTitle retrieves courses whose title contains query, ignoring case.
// The query is matched literally; LIKE wildcards in it carry no special meaning.
func (r *CourseRepository) SearchCoursesByTitle(ctx context.Context, query string) ([]*models.Course, error) {
	builder := r.selectCourseQuery().
		Where(squirrel.Expr(`title ILIKE ? ESCAPE '\'`, helpers.ContainsPattern(query))).
		OrderBy("created_at ASC", "id ASC")
	return r.queryCourses(ctx, builder, "SearchCoursesByTitle")
}

// GetCoursesByInstructor retrieves the courses owned by an instructor.
func (r *CourseRepository) GetCoursesByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	builder := r.selectCourseQuery().
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("created_at ASC", "id ASC")
	return r.queryCourses(ctx, builder, "GetCoursesByInstructor")
}

// patchColumns maps the present fields of a patch to their columns.
func patchColumns(p models.CoursePatch) map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Image != nil {
		cols["image"] = *p.Image
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Learned != nil {
		cols["learned"] = *p.Learned
	}
	if p.Video != nil {
		cols["video"] = p.Video
	}
	return cols
}
