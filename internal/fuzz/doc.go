// Package fuzztests houses Go fuzz harnesses for the STL decoding pipeline
// (source -> lexer -> parser, and the binary codec). Its goal is to smoke
// test robustness and guard against panics, hangs or allocator explosions
// on arbitrary inputs.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер,
// парсер и бинарный декодер; успешно разобранные модели проверяются на
// обратимость кодирования.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser,
// internal/binfmt, internal/stl, internal/testkit.

package fuzztests
