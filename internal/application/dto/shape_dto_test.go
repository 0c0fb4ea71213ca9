package dto_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/shapecalc/internal/application/dto"
	"github.com/hapkiduki/shapecalc/internal/domain/entity"
)

func Test_ShapeSpec_ToEntity(t *testing.T) {
	tests := []struct {
		name string
		spec dto.ShapeSpec
		want entity.Shape
	}{
		{name: "square", spec: dto.ShapeSpec{Kind: "square", Side: 2}, want: entity.NewSquare(2)},
		{name: "circle", spec: dto.ShapeSpec{Kind: "circle", Radius: 5}, want: entity.NewCircle(5)},
		{name: "rectangle", spec: dto.ShapeSpec{Kind: "rectangle", Length: 3, Width: 4}, want: entity.NewRectangle(3, 4)},
		{name: "sphere", spec: dto.ShapeSpec{Kind: "sphere", Radius: 5}, want: entity.NewSphere(5)},
		{name: "kind_is_case_insensitive", spec: dto.ShapeSpec{Kind: " Sphere ", Radius: 1}, want: entity.NewSphere(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.ToEntity()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ShapeSpec_ToEntity_UnknownKind(t *testing.T) {
	got, err := dto.ShapeSpec{Kind: "triangle"}.ToEntity()

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, entity.ErrUnknownShapeKind))
}

func Test_ToEntities(t *testing.T) {
	shapes, verrs, err := dto.ToEntities(dto.DefaultShapes())

	require.NoError(t, err)
	assert.Empty(t, verrs)
	assert.Equal(t, []any{
		entity.NewSquare(2),
		entity.NewCircle(5),
		entity.NewRectangle(3, 4),
		entity.NewSphere(5),
	}, shapes)
}

func Test_ToEntities_StopsAtUnknownKind(t *testing.T) {
	specs := []dto.ShapeSpec{{Kind: "square", Side: 1}, {Kind: "cube", Side: 2}}

	shapes, verrs, err := dto.ToEntities(specs)

	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrUnknownShapeKind))
	assert.Nil(t, shapes)
	require.Len(t, verrs, 1)
	assert.Equal(t, "shapes[1].kind", verrs[0].Field)
	assert.Equal(t, "cube", verrs[0].Value)
}
