package linalg

// Precision conversion between scalar instantiations. Go methods cannot
// introduce new type parameters, so these are free functions.

// ConvertVec2 converts a Vec2 to another scalar type.
func ConvertVec2[To, From Float](v Vec2[From]) Vec2[To] {
	return Vec2[To]{To(v.X), To(v.Y)}
}

// ConvertVec3 converts a Vec3 to another scalar type.
func ConvertVec3[To, From Float](v Vec3[From]) Vec3[To] {
	return Vec3[To]{To(v.X), To(v.Y), To(v.Z)}
}

// ConvertVec4 converts a Vec4 to another scalar type.
func ConvertVec4[To, From Float](v Vec4[From]) Vec4[To] {
	return Vec4[To]{To(v.X), To(v.Y), To(v.Z), To(v.W)}
}

// ConvertMat3 converts a Mat3 to another scalar type.
func ConvertMat3[To, From Float](m Mat3[From]) Mat3[To] {
	var out Mat3[To]
	for i := range m {
		out[i] = To(m[i])
	}
	return out
}

// ConvertMat4 converts a Mat4 to another scalar type.
func ConvertMat4[To, From Float](m Mat4[From]) Mat4[To] {
	var out Mat4[To]
	for i := range m {
		out[i] = To(m[i])
	}
	return out
}
